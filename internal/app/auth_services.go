package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Token types carried in the typ claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// tokenClaims are the claims of both token types; refresh tokens leave Email and Role empty
type tokenClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	Type  string `json:"typ"`
	jwt.RegisteredClaims
}

// authService implements the AuthService interface
type authService struct {
	adminRepository   admins.AdminRepository
	sessionRepository admins.SessionRepository
	secret            []byte
	issuer            string
	accessTTL         time.Duration
	refreshTTL        time.Duration
	maxFailedLogins   int
	logger            logger.Logger
	now               func() time.Time
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	adminRepository admins.AdminRepository,
	sessionRepository admins.SessionRepository,
	settings *config.AuthSettings,
	logger logger.Logger,
) (admins.AuthService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth settings: %w", err)
	}

	return &authService{
		adminRepository:   adminRepository,
		sessionRepository: sessionRepository,
		secret:            []byte(settings.JWTSecret),
		issuer:            settings.Issuer,
		accessTTL:         settings.AccessTokenTTL,
		refreshTTL:        settings.RefreshTokenTTL,
		maxFailedLogins:   settings.MaxFailedLogins,
		logger:            logger,
		now:               func() time.Time { return time.Now().UTC() },
	}, nil
}

// Login checks the credentials and opens a session. Every failed password attempt counts
// towards the lockout; a successful login resets the counter.
func (s *authService) Login(ctx context.Context, email, password string, meta admins.ClientMeta) (*admins.TokenPair, *admins.AdminUser, error) {
	admin, err := s.adminRepository.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil, fmt.Errorf("%w: invalid email or password", common.ErrUnauthorized)
	}
	if err != nil {
		return nil, nil, err
	}

	if !admin.IsActive {
		return nil, nil, fmt.Errorf("%w: account is disabled", common.ErrForbidden)
	}
	if admin.FailedAttempts >= s.maxFailedLogins {
		return nil, nil, fmt.Errorf("%w: too many failed login attempts", common.ErrLocked)
	}

	now := s.now()
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		attempts, countErr := s.adminRepository.IncrementFailedAttempts(ctx, admin.ID, now)
		if countErr != nil {
			return nil, nil, countErr
		}
		s.logger.Warn("Failed admin login", "admin_id", admin.ID, "attempts", attempts, "ip", meta.IPAddress)

		// Attempts that raced past the check above still land on the shared counter.
		if attempts > s.maxFailedLogins {
			return nil, nil, fmt.Errorf("%w: too many failed login attempts", common.ErrLocked)
		}
		return nil, nil, fmt.Errorf("%w: invalid email or password", common.ErrUnauthorized)
	}

	if err := s.adminRepository.RecordLogin(ctx, admin.ID, now); err != nil {
		return nil, nil, err
	}
	admin.FailedAttempts = 0
	admin.LastLoginAt = &now
	admin.UpdatedAt = now

	pair, err := s.openSession(ctx, admin, meta)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Admin logged in", "admin_id", admin.ID, "ip", meta.IPAddress)
	return pair, admin, nil
}

// Refresh revokes the presented session and opens a new one. A refresh token can
// be exchanged once; a second exchange finds the session revoked.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*admins.TokenPair, error) {
	claims, err := s.parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepository.GetByID(ctx, claims.ID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown session", common.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	if !session.Active(s.now()) || session.AdminID != claims.Subject {
		return nil, fmt.Errorf("%w: session is no longer active", common.ErrUnauthorized)
	}

	admin, err := s.activeAdmin(ctx, session.AdminID)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepository.Revoke(ctx, session.ID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: session is no longer active", common.ErrUnauthorized)
		}
		return nil, err
	}

	return s.openSession(ctx, admin, admins.ClientMeta{UserAgent: session.UserAgent, IPAddress: session.IPAddress})
}

// Logout revokes the refresh token's session; logging out twice is not an error
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		return err
	}

	if err := s.sessionRepository.Revoke(ctx, claims.ID); err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}

	s.logger.Info("Admin logged out", "admin_id", claims.Subject, "session_id", claims.ID)
	return nil
}

// Authenticate resolves an access token to the current state of its admin
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*admins.Principal, error) {
	claims, err := s.parse(accessToken, TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	admin, err := s.activeAdmin(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	return &admins.Principal{
		AdminID: admin.ID,
		Email:   admin.Email,
		Role:    admin.Role,
	}, nil
}

// ListSessions lists an admin's sessions, newest first
func (s *authService) ListSessions(ctx context.Context, adminID string) ([]*admins.Session, error) {
	return s.sessionRepository.ListByAdmin(ctx, adminID)
}

// RevokeSession ends a session so its refresh token stops working
func (s *authService) RevokeSession(ctx context.Context, sessionID string) error {
	return s.sessionRepository.Revoke(ctx, sessionID)
}

func (s *authService) activeAdmin(ctx context.Context, adminID string) (*admins.AdminUser, error) {
	admin, err := s.adminRepository.GetByID(ctx, adminID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown admin", common.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	if !admin.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", common.ErrForbidden)
	}
	return admin, nil
}

func (s *authService) openSession(ctx context.Context, admin *admins.AdminUser, meta admins.ClientMeta) (*admins.TokenPair, error) {
	now := s.now()
	session := &admins.Session{
		ID:        uuid.NewString(),
		AdminID:   admin.ID,
		UserAgent: truncate(meta.UserAgent, 512),
		IPAddress: truncate(meta.IPAddress, 64),
		ExpiresAt: now.Add(s.refreshTTL),
		CreatedAt: now,
	}
	if err := s.sessionRepository.Create(ctx, session); err != nil {
		return nil, err
	}

	access, err := s.sign(tokenClaims{
		Email: admin.Email,
		Role:  admin.Role,
		Type:  TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   admin.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	})
	if err != nil {
		return nil, err
	}

	refresh, err := s.sign(tokenClaims{
		Type: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   admin.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	})
	if err != nil {
		return nil, err
	}

	return &admins.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    s.accessTTL,
	}, nil
}

func (s *authService) sign(claims tokenClaims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *authService) parse(raw, tokenType string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}
	if claims.Type != tokenType {
		return nil, fmt.Errorf("%w: expected a %s token", common.ErrUnauthorized, tokenType)
	}
	return claims, nil
}

// HashPassword hashes an admin password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
