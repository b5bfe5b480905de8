package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/user"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
	goredis "github.com/redis/go-redis/v9"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	return getJSON[user.User](ctx, r.db, userKeyPrefix+id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	userID, err := r.db.Get(ctx, userEmailKeyPrefix+email).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read email index for %s: %w", email, err)
	}
	return r.GetByID(ctx, userID)
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	if err := setJSON(ctx, r.db, userKeyPrefix+u.ID, u); err != nil {
		return err
	}
	if err := r.db.Set(ctx, userEmailKeyPrefix+u.Email, u.ID, 0).Err(); err != nil {
		return fmt.Errorf("failed to write email index for %s: %w", u.Email, err)
	}
	return nil
}
