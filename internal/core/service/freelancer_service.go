package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

// FreelancerService processes freelancer applications. The marketplace
// approves immediately: storing the application and promoting the student
// happen in one step.
type FreelancerService struct {
	users        ports.UserRepository
	applications ports.ApplicationRepository
	uploadDir    string
	logger       zerolog.Logger
}

func NewFreelancerService(users ports.UserRepository, applications ports.ApplicationRepository, uploadDir string, logger zerolog.Logger) *FreelancerService {
	return &FreelancerService{users: users, applications: applications, uploadDir: uploadDir, logger: logger}
}

// Apply stores the resume on disk, records the application and promotes the
// student to freelancer. Returns the promoted identity.
func (s *FreelancerService) Apply(ctx context.Context, input ports.ApplicationInput) (*domain.User, error) {
	resumePath, err := s.saveResume(input)
	if err != nil {
		return nil, err
	}

	app := &ports.FreelancerApplication{
		ID:         uuid.NewString(),
		StudentID:  input.StudentID,
		ResumePath: resumePath,
		ResumeName: input.ResumeName,
		Portfolio:  input.Portfolio,
		Skills:     input.Skills,
		AppliedAt:  time.Now().UTC(),
	}
	if err := s.applications.Create(ctx, app); err != nil {
		s.logger.Error().Err(err).Int64("student_id", input.StudentID).Msg("failed to store application")
		return nil, err
	}

	if err := s.users.UpdateRole(ctx, input.StudentID, domain.RoleFreelancer); err != nil {
		return nil, err
	}

	promoted, err := s.users.FindByID(ctx, input.StudentID, domain.RoleFreelancer)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("student_id", input.StudentID).
		Str("application_id", app.ID).
		Msg("freelancer application accepted")
	return promoted, nil
}

// saveResume writes the uploaded file under the upload dir with a generated
// name, keeping the original extension.
func (s *FreelancerService) saveResume(input ports.ApplicationInput) (string, error) {
	if len(input.Resume) == 0 {
		return "", nil
	}
	if err := os.MkdirAll(s.uploadDir, 0o750); err != nil {
		return "", fmt.Errorf("upload dir: %w", err)
	}

	name := uuid.NewString() + filepath.Ext(input.ResumeName)
	path := filepath.Join(s.uploadDir, name)
	if err := os.WriteFile(path, input.Resume, 0o640); err != nil {
		return "", fmt.Errorf("save resume: %w", err)
	}
	return path, nil
}
