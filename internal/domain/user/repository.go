package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// GetByID retrieves a user by id. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail retrieves a user through the email index. Returns nil when absent.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Create stores a user and its email index entry.
	Create(ctx context.Context, user User) error
}
