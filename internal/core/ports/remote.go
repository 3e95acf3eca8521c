package ports

import (
	"context"

	"github.com/skillhive/marketplace/internal/core/domain"
)

// ProjectSnapshot is what a boundary fetch yields: the authoritative project
// set plus whatever enrollment facts the boundary knows about. Boundaries
// predating the enrollment redesign return no enrollments; the project store
// then falls back to the legacy in_progress inference.
type ProjectSnapshot struct {
	Projects    []domain.Project
	Enrollments []domain.Enrollment
}

// RemoteBoundary is the request/response contract the client-side stores
// call through. Two implementations exist: an HTTP client speaking the
// marketplace wire protocol, and an in-memory fake seeded with demo data.
// Any non-success outcome surfaces as a plain error; callers do not branch
// on failure kinds.
type RemoteBoundary interface {
	StudentLogin(ctx context.Context, email, password string) (*domain.User, error)
	ClientLogin(ctx context.Context, email, password string) (*domain.User, error)
	RegisterStudent(ctx context.Context, reg StudentRegistration) error
	RegisterClient(ctx context.Context, reg ClientRegistration) error

	// Projects fetches the project set visible to the current session.
	Projects(ctx context.Context) (*ProjectSnapshot, error)
	PostProject(ctx context.Context, draft ProjectDraft) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID int64, update ProjectUpdate) (*domain.Project, error)
	Enroll(ctx context.Context, projectID int64) error

	ApplyFreelancer(ctx context.Context, input ApplicationInput) error
	Logout(ctx context.Context) error
}
