package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fleet-dispatch/internal/service"
	"github.com/MKhiriev/fleet-dispatch/internal/store"
	"github.com/MKhiriev/fleet-dispatch/internal/validators"
	"github.com/MKhiriev/fleet-dispatch/models"
)

func decodeBody[T any](t *testing.T, body []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func TestVersion_Public(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, &stubDispatch{}), http.MethodGet, "/api/version", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestUnknownMethod_AnswersNotFound(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, &stubDispatch{}), http.MethodDelete, "/api/version", "", false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
	}{
		{name: "success", body: `{"login":"ivan","password":"pw"}`, wantStatus: http.StatusOK},
		{name: "wrong password", body: `{"login":"ivan","password":"bad"}`, loginErr: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized},
		{name: "empty fields", body: `{"login":"","password":""}`, loginErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "broken json", body: `{"login":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &stubAuth{
				login: func(_ context.Context, u models.User) (models.User, error) {
					if tt.loginErr != nil {
						return models.User{}, tt.loginErr
					}
					return models.User{ID: 3, Login: u.Login, Role: models.RoleDispatcher}, nil
				},
				createToken: func(_ context.Context, u models.User) (models.Token, error) {
					assert.Equal(t, int64(3), u.ID)
					return models.Token{SignedString: "signed"}, nil
				},
			}

			rec := doRequest(t, newTestRouterWithAuth(t, &stubDispatch{}, auth), http.MethodPost, "/api/login", tt.body, false)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
			resp := decodeBody[loginResponse](t, rec.Body.Bytes())
			assert.Equal(t, loginResponse{Token: "signed", UserID: 3, Role: models.RoleDispatcher}, resp)
		})
	}
}

func TestLogin_TokenFailure(t *testing.T) {
	auth := &stubAuth{
		login: func(context.Context, models.User) (models.User, error) { return models.User{ID: 1}, nil },
		createToken: func(context.Context, models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	rec := doRequest(t, newTestRouterWithAuth(t, &stubDispatch{}, auth), http.MethodPost, "/api/login", `{"login":"a","password":"b"}`, false)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeBody[errorResponse](t, rec.Body.Bytes())
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), resp.Error)
}

func TestAuth_Rejections(t *testing.T) {
	router := newTestRouter(t, &stubDispatch{})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no token", header: "Bearer"},
		{name: "unknown token", header: "Bearer other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(http.MethodGet, "/api/cars/1", "")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := serve(router, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestCreateDriver(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		dispatch := &stubDispatch{
			createDriver: func(_ context.Context, d models.Driver) (models.Driver, error) {
				assert.Zero(t, d.ID, "client supplied id must be ignored")
				assert.Equal(t, "pw", d.Password)
				d.ID, d.Password = 11, ""
				return d, nil
			},
		}

		rec := doRequest(t, newTestRouter(t, dispatch), http.MethodPost, "/api/drivers",
			`{"id":99,"login":"ivan","password":"pw","name":"Ivan","categories":["B","C"]}`, true)

		require.Equal(t, http.StatusCreated, rec.Code)
		got := decodeBody[models.Driver](t, rec.Body.Bytes())
		assert.Equal(t, int64(11), got.ID)
		assert.Empty(t, got.Password)
		assert.Equal(t, []string{"B", "C"}, got.Categories)
	})

	t.Run("validation failure", func(t *testing.T) {
		dispatch := &stubDispatch{
			createDriver: func(context.Context, models.Driver) (models.Driver, error) {
				return models.Driver{}, validators.ErrInvalidName
			},
		}

		rec := doRequest(t, newTestRouter(t, dispatch), http.MethodPost, "/api/drivers", `{"name":"1van"}`, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		got := decodeBody[validators.ValidationError](t, rec.Body.Bytes())
		assert.Equal(t, *validators.ErrInvalidName, got)
	})

	t.Run("duplicate login", func(t *testing.T) {
		dispatch := &stubDispatch{
			createDriver: func(context.Context, models.Driver) (models.Driver, error) {
				return models.Driver{}, errors.Join(errors.New("error saving driver"), store.ErrLoginAlreadyExists)
			},
		}

		rec := doRequest(t, newTestRouter(t, dispatch), http.MethodPost, "/api/drivers", `{"login":"ivan"}`, true)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := doRequest(t, newTestRouter(t, &stubDispatch{}), http.MethodPost, "/api/drivers", `{"pass_hash":"x"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetDriver_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "found", target: "/api/drivers/5", wantStatus: http.StatusOK},
		{name: "not found", target: "/api/drivers/5", err: validators.ErrDriverNotFound, wantStatus: http.StatusNotFound},
		{name: "lookup failure", target: "/api/drivers/5", err: validators.ErrLookupFailed, wantStatus: http.StatusInternalServerError},
		{name: "bad id", target: "/api/drivers/abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", target: "/api/drivers/0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatch := &stubDispatch{
				getDriver: func(_ context.Context, id int64) (models.Driver, error) {
					assert.Equal(t, int64(5), id)
					if tt.err != nil {
						return models.Driver{}, tt.err
					}
					return models.Driver{ID: id}, nil
				},
			}

			rec := doRequest(t, newTestRouter(t, dispatch), http.MethodGet, tt.target, "", true)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateDriver_PassesPartial(t *testing.T) {
	dispatch := &stubDispatch{
		updateDriver: func(_ context.Context, id int64, d models.Driver) (models.Driver, error) {
			assert.Equal(t, int64(4), id)
			assert.Equal(t, models.Driver{City: "Moscow"}, d)
			return models.Driver{ID: id, Name: "Ivan", City: d.City}, nil
		},
	}

	rec := doRequest(t, newTestRouter(t, dispatch), http.MethodPatch, "/api/drivers/4", `{"city":"Moscow"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ivan", decodeBody[models.Driver](t, rec.Body.Bytes()).Name)
}

func TestDriverEarnings(t *testing.T) {
	dispatch := &stubDispatch{
		driverEarnings: func(_ context.Context, id int64, from, to string) (models.Earnings, error) {
			if from > to {
				return models.Earnings{}, service.ErrInvalidPeriod
			}
			return models.Earnings{DriverID: id, From: from, To: to, Orders: 2, Total: 100, Share: 20}, nil
		},
	}
	router := newTestRouter(t, dispatch)

	rec := doRequest(t, router, http.MethodGet, "/api/drivers/2/earnings?from=2024-01-01&to=2024-01-31", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20.0, decodeBody[models.Earnings](t, rec.Body.Bytes()).Share)

	rec = doRequest(t, router, http.MethodGet, "/api/drivers/2/earnings?from=2024-02-01&to=2024-01-31", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCar_ReferentialFailure(t *testing.T) {
	dispatch := &stubDispatch{
		createCar: func(context.Context, models.Car) (models.Car, error) {
			return models.Car{}, validators.ErrCarOwnerNotFound
		},
	}

	rec := doRequest(t, newTestRouter(t, dispatch), http.MethodPost, "/api/cars", `{"license":"a123bc","driver_id":9}`, true)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	got := decodeBody[validators.ValidationError](t, rec.Body.Bytes())
	assert.Equal(t, validators.ReferentialError, got.Kind)
	assert.Equal(t, "driver_id", got.Field)
}

func TestCarRoutes(t *testing.T) {
	dispatch := &stubDispatch{
		getCar: func(_ context.Context, id int64) (models.Car, error) {
			return models.Car{ID: id, License: "a123bc"}, nil
		},
		updateCar: func(_ context.Context, id int64, c models.Car) (models.Car, error) {
			c.ID = id
			return c, nil
		},
	}
	router := newTestRouter(t, dispatch)

	rec := doRequest(t, router, http.MethodGet, "/api/cars/3", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a123bc", decodeBody[models.Car](t, rec.Body.Bytes()).License)

	rec = doRequest(t, router, http.MethodPatch, "/api/cars/3", `{"mileage_buy":1500}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Car{ID: 3, MileageBuy: 1500}, decodeBody[models.Car](t, rec.Body.Bytes()))
}

func TestOrders(t *testing.T) {
	dispatch := &stubDispatch{
		createOrder: func(_ context.Context, o models.Order) (models.Order, error) {
			o.ID = 1
			return o, nil
		},
		getOrder: func(context.Context, int64) (models.Order, error) {
			return models.Order{}, validators.ErrOrderNotFound
		},
		updateOrder: func(context.Context, int64, models.Order) (models.Order, error) {
			return models.Order{}, validators.ErrCarNotOwnedByDriver
		},
		listOrders: func(_ context.Context, f models.OrderFilter) ([]models.Order, error) {
			assert.Equal(t, models.OrderFilter{DriverID: 2, From: "2024-01-01"}, f)
			return []models.Order{}, nil
		},
	}
	router := newTestRouter(t, dispatch)

	rec := doRequest(t, router, http.MethodPost, "/api/orders", `{"driver_id":2,"car_id":3,"date":"2024-01-05","cost":50}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1), decodeBody[models.Order](t, rec.Body.Bytes()).ID)

	rec = doRequest(t, router, http.MethodGet, "/api/orders/8", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodPatch, "/api/orders/8", `{"car_id":4}`, true)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/orders?driver_id=2&from=2024-01-01", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/api/orders?driver_id=x", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDispatchers(t *testing.T) {
	dispatch := &stubDispatch{
		createDispatcher: func(_ context.Context, d models.Dispatcher) (models.Dispatcher, error) {
			d.ID, d.Password = 12, ""
			return d, nil
		},
		getDispatcher: func(_ context.Context, id int64) (models.Dispatcher, error) {
			return models.Dispatcher{ID: id, Name: "Olga"}, nil
		},
		updateDispatcher: func(context.Context, int64, models.Dispatcher) (models.Dispatcher, error) {
			return models.Dispatcher{}, validators.ErrDispatcherNotFound
		},
	}
	router := newTestRouter(t, dispatch)

	rec := doRequest(t, router, http.MethodPost, "/api/dispatchers", `{"login":"olga","password":"pw","name":"Olga"}`, false)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(12), decodeBody[models.Dispatcher](t, rec.Body.Bytes()).ID)

	rec = doRequest(t, router, http.MethodGet, "/api/dispatchers/12", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/dispatchers/12", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Olga", decodeBody[models.Dispatcher](t, rec.Body.Bytes()).Name)

	rec = doRequest(t, router, http.MethodPatch, "/api/dispatchers/12", `{"city":"Kazan"}`, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateUser(t *testing.T) {
	dispatch := &stubDispatch{
		updateUser: func(_ context.Context, id int64, u models.User) (models.User, error) {
			assert.Equal(t, testUserID, id)
			return models.User{ID: id, Login: u.Login, PassHash: "digest", Role: models.RoleDriver}, nil
		},
	}
	router := newTestRouter(t, dispatch)

	rec := doRequest(t, router, http.MethodPatch, "/api/users/8", `{"login":"other"}`, true)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodPatch, "/api/users/7", `{"login":"renamed","password":"new"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "digest")
	assert.Equal(t, "renamed", decodeBody[models.User](t, rec.Body.Bytes()).Login)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: validators.ErrInvalidBirthday, want: http.StatusBadRequest},
		{err: validators.ErrEmptyLogin, want: http.StatusBadRequest},
		{err: validators.ErrCarNotFound, want: http.StatusNotFound},
		{err: validators.ErrOrderCarNotFound, want: http.StatusUnprocessableEntity},
		{err: store.ErrReferencedRecordMissing, want: http.StatusUnprocessableEntity},
		{err: store.ErrRecordNotFound, want: http.StatusNotFound},
		{err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
