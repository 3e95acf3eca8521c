package ports

import (
	"context"

	"github.com/skillhive/marketplace/internal/core/domain"
)

// ProjectUpdate carries the mutable fields of an update-project call. Nil
// means "leave unchanged".
type ProjectUpdate struct {
	Deadline *string
	Status   *domain.ProjectStatus
}

// ProjectRepository persists projects. Insert assigns the next ID from the
// project sequence. Projects are never deleted.
type ProjectRepository interface {
	Insert(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Project, error)
	ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Project, error)
	Update(ctx context.Context, id int64, update ProjectUpdate) (*domain.Project, error)
}

// EnrollmentRepository persists enrollment facts. Create must reject a
// duplicate (project, student) pair with domain.ErrAlreadyEnrolled.
type EnrollmentRepository interface {
	Create(ctx context.Context, e *domain.Enrollment) error
	ListByStudent(ctx context.Context, studentID int64) ([]domain.Enrollment, error)
}
