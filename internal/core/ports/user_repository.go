package ports

import (
	"context"

	"github.com/skillhive/marketplace/internal/core/domain"
)

// StoredUser is the persistence shape of an account, including the bcrypt
// hash that never leaves the repository layer.
type StoredUser struct {
	User         domain.User
	PasswordHash string
}

// UserRepository persists marketplace accounts. FindByEmail matches only
// users whose role is in the given set, so student and client account
// families stay separate even when they share an email address.
type UserRepository interface {
	Create(ctx context.Context, u *StoredUser) (*domain.User, error)
	FindByEmail(ctx context.Context, email string, roles ...string) (*StoredUser, error)
	FindByID(ctx context.Context, id int64, roles ...string) (*domain.User, error)
	UpdateRole(ctx context.Context, id int64, role string) error
}
