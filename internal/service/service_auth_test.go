package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fleet-dispatch/internal/config"
	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/mock"
	"github.com/MKhiriev/fleet-dispatch/internal/store"
	"github.com/MKhiriev/fleet-dispatch/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "fleet-dispatch-test",
	TokenDuration: time.Hour,
}

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)

	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return NewAuthService(users, hasher, testAppConfig, logger.Nop()), users, hasher
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, users, hasher := newTestAuthSvc(t)
	ctx := context.Background()

	stored := models.User{ID: 7, Login: "ivan", PassHash: "digest", Role: models.RoleDriver}

	gomock.InOrder(
		users.EXPECT().UserByLogin(ctx, "ivan").Return(stored, nil),
		hasher.EXPECT().Verify("digest", "pw").Return(true),
	)

	user, err := svc.Login(ctx, models.User{Login: "ivan", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users, hasher := newTestAuthSvc(t)

	users.EXPECT().UserByLogin(gomock.Any(), "ivan").Return(models.User{ID: 7, PassHash: "digest"}, nil)
	hasher.EXPECT().Verify("digest", "nope").Return(false)

	_, err := svc.Login(context.Background(), models.User{Login: "ivan", Password: "nope"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t)

	users.EXPECT().UserByLogin(gomock.Any(), "ghost").Return(models.User{}, store.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "pw"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t)

	users.EXPECT().UserByLogin(gomock.Any(), "ivan").Return(models.User{}, errors.New("db down"))

	_, err := svc.Login(context.Background(), models.User{Login: "ivan", Password: "pw"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongPassword)
	assert.Contains(t, err.Error(), "user search by login failed")
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	for _, u := range []models.User{{Login: "ivan"}, {Password: "pw"}, {}} {
		_, err := svc.Login(context.Background(), u)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	other := NewAuthService(nil, nil, config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   testAppConfig.TokenIssuer,
		TokenDuration: time.Hour,
	}, logger.Nop())
	foreign, err := other.CreateToken(ctx, models.User{ID: 1})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreign.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_MissingConfig(t *testing.T) {
	svc := NewAuthService(nil, nil, config.App{}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{ID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
