package client

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

// ProjectStore owns the working set of projects. Every mutation is an
// asynchronous command that calls through the boundary and then reconciles
// by refreshing the whole set. The store never assumes an optimistic local
// edit is durable until the remote confirms it.
type ProjectStore struct {
	boundary ports.RemoteBoundary
	notifier ports.Notifier
	log      zerolog.Logger

	mu          sync.Mutex
	projects    []domain.Project
	enrollments []domain.Enrollment
	loading     bool
	lastErr     string
}

func NewProjectStore(boundary ports.RemoteBoundary, notifier ports.Notifier, log zerolog.Logger) *ProjectStore {
	return &ProjectStore{
		boundary: boundary,
		notifier: notifier,
		log:      log,
	}
}

// Refresh fetches the authoritative project set, normalizes skills at the
// ingestion boundary and replaces the local sequence wholesale. On failure
// the previous snapshot is kept and LastError is set.
func (s *ProjectStore) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	snapshot, err := s.boundary.Projects(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("project refresh failed")
		s.mu.Lock()
		s.lastErr = "Failed to load projects"
		s.mu.Unlock()
		s.notifier.Notify(ports.Notification{
			Title:       "Error",
			Description: "Failed to load projects. Please try again.",
			Severity:    ports.SeverityError,
		})
		return
	}

	projects := make([]domain.Project, len(snapshot.Projects))
	copy(projects, snapshot.Projects)
	for i := range projects {
		projects[i].Normalize()
	}
	enrollments := make([]domain.Enrollment, len(snapshot.Enrollments))
	copy(enrollments, snapshot.Enrollments)

	s.mu.Lock()
	s.projects = projects
	s.enrollments = enrollments
	s.lastErr = ""
	s.mu.Unlock()
}

// Loading reports whether a refresh is in flight.
func (s *ProjectStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the message of the most recent failed refresh, or "".
func (s *ProjectStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Projects returns a copy of the current snapshot.
func (s *ProjectStore) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// ByClient returns the projects owned by the given client, preserving
// relative order.
func (s *ProjectStore) ByClient(clientID int64) []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Project
	for _, p := range s.projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// Open returns the projects currently open for enrollment.
func (s *ProjectStore) Open() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Project
	for _, p := range s.projects {
		if p.Status == domain.StatusOpen {
			out = append(out, p)
		}
	}
	return out
}

// Enrolled returns the projects the given student is enrolled in, joined
// through explicit enrollment facts. When the boundary supplied no facts at
// all (a legacy backend), it falls back to the old inference of returning
// every in-progress project.
func (s *ProjectStore) Enrolled(studentID int64) []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.enrollments) == 0 {
		var out []domain.Project
		for _, p := range s.projects {
			if p.Status == domain.StatusInProgress {
				out = append(out, p)
			}
		}
		return out
	}

	enrolled := make(map[int64]struct{})
	for _, e := range s.enrollments {
		if e.StudentID == studentID {
			enrolled[e.ProjectID] = struct{}{}
		}
	}
	var out []domain.Project
	for _, p := range s.projects {
		if _, ok := enrolled[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Create posts a new project. The server assigns the ID and the status is
// always open, whatever the caller intended.
func (s *ProjectStore) Create(ctx context.Context, draft ports.ProjectDraft) bool {
	if _, err := s.boundary.PostProject(ctx, draft); err != nil {
		s.log.Debug().Err(err).Str("title", draft.Title).Msg("project creation failed")
		s.notifier.Notify(ports.Notification{
			Title:       "Error",
			Description: "Failed to create project. Please try again.",
			Severity:    ports.SeverityError,
		})
		return false
	}

	s.notifier.Notify(ports.Notification{
		Title:       "Success",
		Description: "Project created successfully!",
		Severity:    ports.SeveritySuccess,
	})
	s.Refresh(ctx)
	return true
}

// SetStatus moves a project to the given status. No transition matrix is
// enforced here; the server is the authority.
func (s *ProjectStore) SetStatus(ctx context.Context, projectID int64, status domain.ProjectStatus) bool {
	update := ports.ProjectUpdate{Status: &status}
	if _, err := s.boundary.UpdateProject(ctx, projectID, update); err != nil {
		s.log.Debug().Err(err).Int64("project_id", projectID).Msg("status update failed")
		s.notifier.Notify(ports.Notification{
			Title:       "Error",
			Description: "Failed to update project status. Please try again.",
			Severity:    ports.SeverityError,
		})
		return false
	}

	s.notifier.Notify(ports.Notification{
		Title:       "Success",
		Description: fmt.Sprintf("Project status updated to %s", strings.ReplaceAll(string(status), "_", " ")),
		Severity:    ports.SeveritySuccess,
	})
	s.Refresh(ctx)
	return true
}

// SetDeadline changes a project's deadline.
func (s *ProjectStore) SetDeadline(ctx context.Context, projectID int64, deadline string) bool {
	update := ports.ProjectUpdate{Deadline: &deadline}
	if _, err := s.boundary.UpdateProject(ctx, projectID, update); err != nil {
		s.log.Debug().Err(err).Int64("project_id", projectID).Msg("deadline update failed")
		s.notifier.Notify(ports.Notification{
			Title:       "Error",
			Description: "Failed to update project deadline. Please try again.",
			Severity:    ports.SeverityError,
		})
		return false
	}

	s.notifier.Notify(ports.Notification{
		Title:       "Success",
		Description: "Project deadline updated successfully",
		Severity:    ports.SeveritySuccess,
	})
	s.Refresh(ctx)
	return true
}

// Enroll enrolls the student in a project, forcing it to in_progress. The
// boundary enrolls whoever owns the session; studentID is carried for
// logging and symmetry with the Enrolled projection.
func (s *ProjectStore) Enroll(ctx context.Context, projectID, studentID int64) bool {
	if err := s.boundary.Enroll(ctx, projectID); err != nil {
		s.log.Debug().Err(err).
			Int64("project_id", projectID).
			Int64("student_id", studentID).
			Msg("enrollment failed")
		s.notifier.Notify(ports.Notification{
			Title:       "Error",
			Description: "Failed to enroll in project. Please try again.",
			Severity:    ports.SeverityError,
		})
		return false
	}

	s.notifier.Notify(ports.Notification{
		Title:       "Success",
		Description: "You have successfully enrolled in this project!",
		Severity:    ports.SeveritySuccess,
	})
	s.Refresh(ctx)
	return true
}
