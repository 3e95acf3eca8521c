package ports

import (
	"context"

	"github.com/skillhive/marketplace/internal/core/domain"
)

// StudentRegistration carries the register-student form: academic details
// plus an initial skill summary.
type StudentRegistration struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	College    string
	Department string
	Year       string
	Skills     string
	Portfolio  string
}

// ClientRegistration mirrors the register-client form.
type ClientRegistration struct {
	Name         string
	Email        string
	Password     string
	Organization string
	Phone        string
	Location     string
}

// LoginResult is what a successful login yields: the identity and a signed
// session token already registered server-side.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService implements registration, role-scoped login and session
// lifecycle for the marketplace.
type AuthService interface {
	RegisterStudent(ctx context.Context, reg StudentRegistration) (*domain.User, error)
	RegisterClient(ctx context.Context, reg ClientRegistration) (*domain.User, error)
	// Login authenticates against one account family: RoleStudent matches
	// students and freelancers, RoleClient matches clients only.
	Login(ctx context.Context, email, password, role string) (*LoginResult, error)
	// Logout revokes the session identified by the token's jti.
	Logout(ctx context.Context, tokenID string) error
}
