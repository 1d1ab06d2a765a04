package admins

import (
	"context"
	"time"
)

// AuthService authenticates operators and manages their sessions
type AuthService interface {
	Login(ctx context.Context, email, password string, meta ClientMeta) (*TokenPair, *AdminUser, error)
	// Refresh rotates the refresh token: the presented session is revoked and a new pair issued.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Authenticate(ctx context.Context, accessToken string) (*Principal, error)
	ListSessions(ctx context.Context, adminID string) ([]*Session, error)
	RevokeSession(ctx context.Context, sessionID string) error
}

// AdminService manages operator accounts
type AdminService interface {
	Create(ctx context.Context, input *CreateAdminInput) (*AdminUser, error)
	List(ctx context.Context, query *AdminQuery) ([]*AdminUser, int64, error)
	GetByID(ctx context.Context, adminID string) (*AdminUser, error)
	Update(ctx context.Context, adminID string, input *UpdateAdminInput) (*AdminUser, error)
}

// AdminRepository defines the persistence operations for operators
type AdminRepository interface {
	Create(ctx context.Context, admin *AdminUser) error
	List(ctx context.Context, query *AdminQuery) ([]*AdminUser, int64, error)
	GetByID(ctx context.Context, adminID string) (*AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
	Update(ctx context.Context, admin *AdminUser) error
	// IncrementFailedAttempts adds one to the failed login counter in place and returns the new count
	IncrementFailedAttempts(ctx context.Context, adminID string, at time.Time) (int, error)
	// RecordLogin clears the failed login counter and stamps the login time
	RecordLogin(ctx context.Context, adminID string, at time.Time) error
}

// SessionRepository defines the persistence operations for refresh sessions
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	ListByAdmin(ctx context.Context, adminID string) ([]*Session, error)
	// Revoke stamps revoked_at; it returns common.ErrNotFound for unknown or already revoked sessions.
	Revoke(ctx context.Context, sessionID string) error
}
