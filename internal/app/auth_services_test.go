//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/craneintel/crane-intelligence/internal/pkg/testutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct horse battery"

type authFixture struct {
	svc      *authService
	admins   *MockAdminRepository
	sessions *MockSessionRepository
	admin    *admins.AdminUser
	now      time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	hash, err := HashPassword(testPassword)
	require.NoError(t, err)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	admin := &admins.AdminUser{
		ID:           uuid.NewString(),
		Email:        "ops@craneintel.example",
		FullName:     "Ops Lead",
		PasswordHash: hash,
		Role:         admins.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	adminRepo := &MockAdminRepository{}
	sessionRepo := &MockSessionRepository{}

	svc, err := NewAuthService(adminRepo, sessionRepo, &config.AuthSettings{
		JWTSecret:       "0123456789abcdef0123456789abcdef",
		Issuer:          "crane-intelligence",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		MaxFailedLogins: 3,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	impl := svc.(*authService)
	impl.now = func() time.Time { return now }

	return &authFixture{svc: impl, admins: adminRepo, sessions: sessionRepo, admin: admin, now: now}
}

func (f *authFixture) login(t *testing.T) (*admins.TokenPair, *admins.Session) {
	t.Helper()

	var created *admins.Session
	f.admins.On("GetByEmail", mock.Anything, f.admin.Email).Return(f.admin, nil).Once()
	f.admins.On("RecordLogin", mock.Anything, f.admin.ID, f.now).Return(nil).Once()
	f.sessions.On("Create", mock.Anything, mock.AnythingOfType("*admins.Session")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*admins.Session) }).
		Return(nil).Once()

	pair, admin, err := f.svc.Login(context.Background(), "  OPS@craneintel.example ", testPassword, admins.ClientMeta{UserAgent: "test", IPAddress: "10.0.0.1"})
	require.NoError(t, err)
	require.Equal(t, f.admin.ID, admin.ID)
	require.NotNil(t, created)
	return pair, created
}

func TestAuthService_LoginIssuesTokenPair(t *testing.T) {
	f := newAuthFixture(t)
	f.admin.FailedAttempts = 2

	pair, session := f.login(t)

	assert.Equal(t, 0, f.admin.FailedAttempts)
	assert.Equal(t, &f.now, f.admin.LastLoginAt)
	assert.Equal(t, 15*time.Minute, pair.ExpiresIn)
	assert.Equal(t, f.now.Add(7*24*time.Hour), session.ExpiresAt)
	assert.Equal(t, "10.0.0.1", session.IPAddress)

	claims := &tokenClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(pair.RefreshToken, claims)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
	assert.Equal(t, session.ID, claims.ID)

	f.admins.On("GetByID", mock.Anything, f.admin.ID).Return(f.admin, nil).Once()
	principal, err := f.svc.Authenticate(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admins.Principal{AdminID: f.admin.ID, Email: f.admin.Email, Role: admins.RoleAdmin}, *principal)
}

func TestAuthService_LoginFailures(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admins.On("GetByEmail", mock.Anything, "nobody@craneintel.example").Return(nil, common.ErrNotFound)

		_, _, err := f.svc.Login(context.Background(), "nobody@craneintel.example", testPassword, admins.ClientMeta{})
		assert.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("wrong password counts the attempt", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admins.On("GetByEmail", mock.Anything, f.admin.Email).Return(f.admin, nil)
		f.admins.On("IncrementFailedAttempts", mock.Anything, f.admin.ID, f.now).Return(1, nil).Once()

		_, _, err := f.svc.Login(context.Background(), f.admin.Email, "not the password", admins.ClientMeta{})
		assert.ErrorIs(t, err, common.ErrUnauthorized)
		f.admins.AssertExpectations(t)
		f.admins.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("attempt counted past the limit is locked", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admin.FailedAttempts = 2
		f.admins.On("GetByEmail", mock.Anything, f.admin.Email).Return(f.admin, nil)
		f.admins.On("IncrementFailedAttempts", mock.Anything, f.admin.ID, f.now).Return(4, nil).Once()

		_, _, err := f.svc.Login(context.Background(), f.admin.Email, "not the password", admins.ClientMeta{})
		assert.ErrorIs(t, err, common.ErrLocked)
	})

	t.Run("locked after max attempts even with the right password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admin.FailedAttempts = 3
		f.admins.On("GetByEmail", mock.Anything, f.admin.Email).Return(f.admin, nil)

		_, _, err := f.svc.Login(context.Background(), f.admin.Email, testPassword, admins.ClientMeta{})
		assert.ErrorIs(t, err, common.ErrLocked)
	})

	t.Run("inactive admin", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admin.IsActive = false
		f.admins.On("GetByEmail", mock.Anything, f.admin.Email).Return(f.admin, nil)

		_, _, err := f.svc.Login(context.Background(), f.admin.Email, testPassword, admins.ClientMeta{})
		assert.ErrorIs(t, err, common.ErrForbidden)
	})
}

func TestAuthService_RefreshRotatesSession(t *testing.T) {
	f := newAuthFixture(t)
	pair, session := f.login(t)

	f.sessions.On("GetByID", mock.Anything, session.ID).Return(session, nil).Once()
	f.admins.On("GetByID", mock.Anything, f.admin.ID).Return(f.admin, nil).Once()
	f.sessions.On("Revoke", mock.Anything, session.ID).Return(nil).Once()
	f.sessions.On("Create", mock.Anything, mock.AnythingOfType("*admins.Session")).Return(nil).Once()

	next, err := f.svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)
	f.sessions.AssertExpectations(t)
}

func TestAuthService_RefreshRejectsRevokedSession(t *testing.T) {
	f := newAuthFixture(t)
	pair, session := f.login(t)

	revokedAt := f.now
	session.RevokedAt = &revokedAt
	f.sessions.On("GetByID", mock.Anything, session.ID).Return(session, nil).Once()

	_, err := f.svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	f.sessions.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}

func TestAuthService_TokenTypesAreNotInterchangeable(t *testing.T) {
	f := newAuthFixture(t)
	pair, _ := f.login(t)

	_, err := f.svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = f.svc.Authenticate(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAuthService_ExpiredAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	pair, _ := f.login(t)

	f.svc.now = func() time.Time { return f.now.Add(16 * time.Minute) }

	_, err := f.svc.Authenticate(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAuthService_LogoutIsIdempotent(t *testing.T) {
	f := newAuthFixture(t)
	pair, session := f.login(t)

	f.sessions.On("Revoke", mock.Anything, session.ID).Return(nil).Once()
	f.sessions.On("Revoke", mock.Anything, session.ID).Return(common.ErrNotFound).Once()

	require.NoError(t, f.svc.Logout(context.Background(), pair.RefreshToken))
	require.NoError(t, f.svc.Logout(context.Background(), pair.RefreshToken))
}

func TestNewAuthService_RejectsShortSecret(t *testing.T) {
	_, err := NewAuthService(&MockAdminRepository{}, &MockSessionRepository{}, &config.AuthSettings{
		JWTSecret:       "short",
		Issuer:          "crane-intelligence",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
		MaxFailedLogins: 5,
	}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
