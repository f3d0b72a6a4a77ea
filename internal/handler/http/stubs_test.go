package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/fleet-dispatch/internal/config"
	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/service"
	"github.com/MKhiriev/fleet-dispatch/models"
)

type stubDispatch struct {
	createDriver     func(ctx context.Context, d models.Driver) (models.Driver, error)
	updateDriver     func(ctx context.Context, id int64, d models.Driver) (models.Driver, error)
	getDriver        func(ctx context.Context, id int64) (models.Driver, error)
	createCar        func(ctx context.Context, c models.Car) (models.Car, error)
	updateCar        func(ctx context.Context, id int64, c models.Car) (models.Car, error)
	getCar           func(ctx context.Context, id int64) (models.Car, error)
	createOrder      func(ctx context.Context, o models.Order) (models.Order, error)
	updateOrder      func(ctx context.Context, id int64, o models.Order) (models.Order, error)
	getOrder         func(ctx context.Context, id int64) (models.Order, error)
	listOrders       func(ctx context.Context, f models.OrderFilter) ([]models.Order, error)
	createDispatcher func(ctx context.Context, d models.Dispatcher) (models.Dispatcher, error)
	updateDispatcher func(ctx context.Context, id int64, d models.Dispatcher) (models.Dispatcher, error)
	getDispatcher    func(ctx context.Context, id int64) (models.Dispatcher, error)
	updateUser       func(ctx context.Context, id int64, u models.User) (models.User, error)
	driverEarnings   func(ctx context.Context, id int64, from, to string) (models.Earnings, error)
}

func (s *stubDispatch) CreateDriver(ctx context.Context, d models.Driver) (models.Driver, error) {
	return s.createDriver(ctx, d)
}

func (s *stubDispatch) UpdateDriver(ctx context.Context, id int64, d models.Driver) (models.Driver, error) {
	return s.updateDriver(ctx, id, d)
}

func (s *stubDispatch) GetDriver(ctx context.Context, id int64) (models.Driver, error) {
	return s.getDriver(ctx, id)
}

func (s *stubDispatch) CreateCar(ctx context.Context, c models.Car) (models.Car, error) {
	return s.createCar(ctx, c)
}

func (s *stubDispatch) UpdateCar(ctx context.Context, id int64, c models.Car) (models.Car, error) {
	return s.updateCar(ctx, id, c)
}

func (s *stubDispatch) GetCar(ctx context.Context, id int64) (models.Car, error) {
	return s.getCar(ctx, id)
}

func (s *stubDispatch) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	return s.createOrder(ctx, o)
}

func (s *stubDispatch) UpdateOrder(ctx context.Context, id int64, o models.Order) (models.Order, error) {
	return s.updateOrder(ctx, id, o)
}

func (s *stubDispatch) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	return s.getOrder(ctx, id)
}

func (s *stubDispatch) ListOrders(ctx context.Context, f models.OrderFilter) ([]models.Order, error) {
	return s.listOrders(ctx, f)
}

func (s *stubDispatch) CreateDispatcher(ctx context.Context, d models.Dispatcher) (models.Dispatcher, error) {
	return s.createDispatcher(ctx, d)
}

func (s *stubDispatch) UpdateDispatcher(ctx context.Context, id int64, d models.Dispatcher) (models.Dispatcher, error) {
	return s.updateDispatcher(ctx, id, d)
}

func (s *stubDispatch) GetDispatcher(ctx context.Context, id int64) (models.Dispatcher, error) {
	return s.getDispatcher(ctx, id)
}

func (s *stubDispatch) UpdateUser(ctx context.Context, id int64, u models.User) (models.User, error) {
	return s.updateUser(ctx, id, u)
}

func (s *stubDispatch) DriverEarnings(ctx context.Context, id int64, from, to string) (models.Earnings, error) {
	return s.driverEarnings(ctx, id, from, to)
}

type stubAuth struct {
	login       func(ctx context.Context, u models.User) (models.User, error)
	createToken func(ctx context.Context, u models.User) (models.Token, error)
	parseToken  func(ctx context.Context, token string) (models.Token, error)
}

func (s *stubAuth) Login(ctx context.Context, u models.User) (models.User, error) {
	return s.login(ctx, u)
}

func (s *stubAuth) CreateToken(ctx context.Context, u models.User) (models.Token, error) {
	return s.createToken(ctx, u)
}

func (s *stubAuth) ParseToken(ctx context.Context, token string) (models.Token, error) {
	return s.parseToken(ctx, token)
}

type stubAppInfo struct{ version string }

func (s stubAppInfo) GetAppVersion(context.Context) string { return s.version }

const (
	testToken  = "valid-token"
	testUserID = int64(7)
)

// newTestRouter builds the full router around stubs. Requests carrying
// "Bearer valid-token" authenticate as testUserID.
func newTestRouter(t *testing.T, dispatch *stubDispatch) http.Handler {
	t.Helper()

	auth := &stubAuth{
		parseToken: func(_ context.Context, token string) (models.Token, error) {
			if token != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testUserID}, nil
		},
	}

	return newTestRouterWithAuth(t, dispatch, auth)
}

func newTestRouterWithAuth(t *testing.T, dispatch *stubDispatch, auth *stubAuth) http.Handler {
	t.Helper()

	services := &service.Services{
		AuthService:     auth,
		DispatchService: dispatch,
		AppInfoService:  stubAppInfo{version: "1.2.3"},
	}

	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return httptest.NewRequest(method, target, reader)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doRequest(t *testing.T, h http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	req := newRequest(method, target, body)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	return serve(h, req)
}
