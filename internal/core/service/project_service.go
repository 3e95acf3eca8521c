package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

// ProjectService implements project lifecycle and enrollment against the
// repositories.
type ProjectService struct {
	projects    ports.ProjectRepository
	enrollments ports.EnrollmentRepository
	logger      zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, enrollments ports.EnrollmentRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, enrollments: enrollments, logger: logger}
}

// Create stores a client's draft. The server assigns the ID, normalizes the
// skill list and forces the initial status to open regardless of what the
// caller sent.
func (s *ProjectService) Create(ctx context.Context, draft ports.ProjectDraft) (*domain.Project, error) {
	project := &domain.Project{
		ClientID:       draft.ClientID,
		Title:          draft.Title,
		Description:    draft.Description,
		SkillsRequired: domain.SplitSkills(draft.SkillsJoined),
		Budget:         draft.Budget,
		Deadline:       draft.Deadline,
		Category:       draft.Category,
		Status:         domain.StatusOpen,
	}

	created, err := s.projects.Insert(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Int64("client_id", draft.ClientID).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().
		Int64("project_id", created.ID).
		Int64("client_id", created.ClientID).
		Str("category", created.Category).
		Msg("project created")
	return created, nil
}

// Update changes deadline and/or status of the caller's own project. Any
// known status value is accepted; there is no transition matrix.
func (s *ProjectService) Update(ctx context.Context, callerID, projectID int64, update ports.ProjectUpdate) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.ClientID != callerID {
		return nil, domain.ErrForbidden
	}
	if update.Status != nil && !update.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.projects.Update(ctx, projectID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("project_id", projectID).
		Str("status", string(updated.Status)).
		Msg("project updated")
	return updated, nil
}

func (s *ProjectService) ListByClient(ctx context.Context, clientID int64) ([]domain.Project, error) {
	return s.projects.ListByClient(ctx, clientID)
}

// Enroll records an enrollment fact for the student and forces the project
// to in_progress. Enrolling twice in the same project fails with
// domain.ErrAlreadyEnrolled and leaves the project untouched.
func (s *ProjectService) Enroll(ctx context.Context, projectID, studentID int64) error {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return err
	}

	if err := s.enrollments.Create(ctx, &domain.Enrollment{
		ProjectID:  projectID,
		StudentID:  studentID,
		EnrolledAt: time.Now().UTC(),
	}); err != nil {
		return err
	}

	status := domain.StatusInProgress
	if _, err := s.projects.Update(ctx, projectID, ports.ProjectUpdate{Status: &status}); err != nil {
		return fmt.Errorf("mark project in progress: %w", err)
	}

	s.logger.Info().
		Int64("project_id", projectID).
		Int64("student_id", studentID).
		Msg("student enrolled")
	return nil
}

// Dashboard assembles the student dashboard payload: projects open for
// enrollment plus the student's own enrolled projects and facts.
func (s *ProjectService) Dashboard(ctx context.Context, user *domain.User) (*ports.StudentDashboard, error) {
	open, err := s.projects.ListByStatus(ctx, domain.StatusOpen)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollments.ListByStudent(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.ProjectID)
	}
	enrolled, err := s.projects.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &ports.StudentDashboard{
		User:             user,
		OpenProjects:     open,
		EnrolledProjects: enrolled,
		Enrollments:      enrollments,
	}, nil
}
