// Package client holds the state layer behind the marketplace UI: a session
// store owning the authenticated identity and a project store owning the
// working set of projects. Both treat the remote boundary as the single
// source of truth, absorb every failure into a boolean result plus a
// notification, and never let an error escape to the caller.
package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/skillhive/marketplace/internal/client/vault"
	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

// IdentityVault is the durable single-key slot the session persists to.
type IdentityVault interface {
	Load() (*domain.User, error)
	Store(user *domain.User) error
	Clear() error
}

// SessionStore owns the current authenticated identity. Commands are not
// queued or de-duplicated: two concurrent logins race and the last writer
// wins. The UI serializes commands in practice; the store itself makes no
// such guarantee.
type SessionStore struct {
	boundary ports.RemoteBoundary
	vault    IdentityVault
	notifier ports.Notifier
	log      zerolog.Logger

	mu      sync.Mutex
	current *domain.User
	loading bool
}

// NewSessionStore restores any persisted identity from the vault. A corrupt
// slot is deleted and startup continues unauthenticated; the store never
// fails to construct.
func NewSessionStore(boundary ports.RemoteBoundary, v IdentityVault, notifier ports.Notifier, log zerolog.Logger) *SessionStore {
	s := &SessionStore{
		boundary: boundary,
		vault:    v,
		notifier: notifier,
		log:      log,
	}

	user, err := v.Load()
	switch {
	case err == nil:
		s.current = user
	case errors.Is(err, vault.ErrCorrupt):
		log.Warn().Err(err).Msg("discarding corrupt persisted identity")
		if clearErr := v.Clear(); clearErr != nil {
			log.Error().Err(clearErr).Msg("failed to clear corrupt identity slot")
		}
	default:
		log.Warn().Err(err).Msg("could not restore persisted identity")
	}
	return s
}

// CurrentUser returns a copy of the authenticated identity, or nil.
func (s *SessionStore) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	clone := *s.current
	return &clone
}

// Loading reports whether a session command is in flight.
func (s *SessionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *SessionStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Login authenticates against the account family named by role
// (domain.RoleStudent or domain.RoleClient). On success the identity becomes
// current and is persisted; on any failure state is left untouched.
func (s *SessionStore) Login(ctx context.Context, email, password, role string) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	var (
		user *domain.User
		err  error
	)
	switch role {
	case domain.RoleStudent:
		user, err = s.boundary.StudentLogin(ctx, email, password)
	case domain.RoleClient:
		user, err = s.boundary.ClientLogin(ctx, email, password)
	default:
		err = domain.ErrInvalidRole
	}
	if err != nil {
		s.log.Debug().Err(err).Str("email", email).Str("role", role).Msg("login failed")
		s.notifier.Notify(ports.Notification{
			Title:       "Login failed",
			Description: "Invalid email or password. Please try again.",
			Severity:    ports.SeverityError,
		})
		return false
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	if err := s.vault.Store(user); err != nil {
		s.log.Warn().Err(err).Msg("could not persist identity")
	}

	s.notifier.Notify(ports.Notification{
		Title:       "Login successful!",
		Description: fmt.Sprintf("Welcome back, %s!", user.Name),
		Severity:    ports.SeveritySuccess,
	})
	return true
}

// RegisterStudent submits a student registration. Registration never
// authenticates: a fresh account still has to log in.
func (s *SessionStore) RegisterStudent(ctx context.Context, reg ports.StudentRegistration) bool {
	s.setLoading(true)
	defer s.setLoading(false)
	return s.finishRegistration(s.boundary.RegisterStudent(ctx, reg))
}

// RegisterClient submits a client registration.
func (s *SessionStore) RegisterClient(ctx context.Context, reg ports.ClientRegistration) bool {
	s.setLoading(true)
	defer s.setLoading(false)
	return s.finishRegistration(s.boundary.RegisterClient(ctx, reg))
}

func (s *SessionStore) finishRegistration(err error) bool {
	if err != nil {
		s.log.Debug().Err(err).Msg("registration failed")
		s.notifier.Notify(ports.Notification{
			Title:       "Registration error",
			Description: "Something went wrong. Please try again.",
			Severity:    ports.SeverityError,
		})
		return false
	}
	s.notifier.Notify(ports.Notification{
		Title:       "Registration successful!",
		Description: "You can now log in with your credentials.",
		Severity:    ports.SeveritySuccess,
	})
	return true
}

// ApplyFreelancer submits the freelancer application for the current
// student. On acceptance the identity's role is promoted to freelancer and
// re-persisted.
func (s *SessionStore) ApplyFreelancer(ctx context.Context, input ports.ApplicationInput) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.Lock()
	current := s.current
	s.mu.Unlock()
	if current == nil || current.Role != domain.RoleStudent {
		s.notifier.Notify(ports.Notification{
			Title:       "Application failed",
			Description: "Only students can apply to become freelancers.",
			Severity:    ports.SeverityError,
		})
		return false
	}

	input.StudentID = current.ID
	if err := s.boundary.ApplyFreelancer(ctx, input); err != nil {
		s.log.Debug().Err(err).Msg("freelancer application failed")
		s.notifier.Notify(ports.Notification{
			Title:       "Application failed",
			Description: "Something went wrong. Please try again.",
			Severity:    ports.SeverityError,
		})
		return false
	}

	s.mu.Lock()
	var promoted *domain.User
	if s.current != nil {
		s.current.Role = domain.RoleFreelancer
		clone := *s.current
		promoted = &clone
	}
	s.mu.Unlock()

	if promoted != nil {
		if err := s.vault.Store(promoted); err != nil {
			s.log.Warn().Err(err).Msg("could not persist promoted identity")
		}
	}

	s.notifier.Notify(ports.Notification{
		Title:       "Application submitted successfully!",
		Description: "Your freelancer application is now being reviewed.",
		Severity:    ports.SeveritySuccess,
	})
	return true
}

// Logout clears the in-memory and persisted identity. The server session is
// revoked best-effort; local logout always succeeds and is idempotent.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.vault.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("could not clear identity slot")
	}
	if err := s.boundary.Logout(ctx); err != nil {
		s.log.Debug().Err(err).Msg("server session revocation failed")
	}

	s.notifier.Notify(ports.Notification{
		Title:    "Logged out successfully",
		Severity: ports.SeverityInfo,
	})
}
