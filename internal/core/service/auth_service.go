package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

// AuthService implements registration, role-scoped login and session
// revocation.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionRegistry
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRegistry, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) RegisterStudent(ctx context.Context, reg ports.StudentRegistration) (*domain.User, error) {
	if reg.Name == "" || reg.Email == "" || reg.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return s.register(ctx, reg.Name, reg.Email, reg.Password, domain.RoleStudent)
}

func (s *AuthService) RegisterClient(ctx context.Context, reg ports.ClientRegistration) (*domain.User, error) {
	if reg.Name == "" || reg.Email == "" || reg.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return s.register(ctx, reg.Name, reg.Email, reg.Password, domain.RoleClient)
}

func (s *AuthService) register(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &ports.StoredUser{
		User:         domain.User{Name: name, Email: email, Role: role},
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login authenticates against one account family: RoleStudent matches
// students and promoted freelancers, RoleClient matches clients. Any
// mismatch (unknown email, wrong family, wrong password) collapses into
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role != domain.RoleStudent && role != domain.RoleClient {
		return nil, domain.ErrInvalidRole
	}

	stored, err := s.users.FindByEmail(ctx, email, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tokenID := uuid.NewString()
	token, err := s.generateToken(&stored.User, tokenID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Register(ctx, tokenID, stored.User.ID, s.tokenTTL); err != nil {
		return nil, err
	}

	user := stored.User
	return &ports.LoginResult{Token: token, User: &user}, nil
}

// Logout revokes the session. Unknown sessions revoke silently.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	return s.sessions.Revoke(ctx, tokenID)
}

func (s *AuthService) generateToken(user *domain.User, tokenID string) (string, error) {
	claims := jwt.MapClaims{
		"jti":   tokenID,
		"sub":   fmt.Sprintf("%d", user.ID),
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
