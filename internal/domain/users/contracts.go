package users

import "context"

// UserService defines operator-facing user management.
type UserService interface {
	Create(ctx context.Context, input *CreateUserInput) (*User, error)
	List(ctx context.Context, query *UserQuery) ([]*User, int64, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	Update(ctx context.Context, userID string, input *UpdateUserInput) (*User, error)
	// DeleteByID soft-deletes the user.
	DeleteByID(ctx context.Context, userID string) error
}

// UserRepository defines the persistence operations for users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context, query *UserQuery) ([]*User, int64, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
