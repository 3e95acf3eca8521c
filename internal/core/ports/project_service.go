package ports

import (
	"context"

	"github.com/skillhive/marketplace/internal/core/domain"
)

// ProjectDraft is a project as submitted by a client: no ID yet, status
// ignored (new projects are always open). SkillsJoined carries the wire
// form, a comma-separated string.
type ProjectDraft struct {
	ClientID     int64
	Title        string
	Description  string
	SkillsJoined string
	Budget       string
	Deadline     string
	Category     string
}

// StudentDashboard is the payload backing a student's dashboard view: the
// projects open for enrollment, the student's own enrolled projects, and the
// raw enrollment facts.
type StudentDashboard struct {
	User             *domain.User        `json:"user"`
	OpenProjects     []domain.Project    `json:"open_projects"`
	EnrolledProjects []domain.Project    `json:"enrolled_projects"`
	Enrollments      []domain.Enrollment `json:"enrollments"`
}

// ApplicationInput carries a freelancer application through the service
// layer; Resume is the raw uploaded file content.
type ApplicationInput struct {
	StudentID  int64
	Resume     []byte
	ResumeName string
	Portfolio  string
	Skills     string
}

// ProjectService implements project lifecycle and enrollment.
type ProjectService interface {
	Create(ctx context.Context, draft ProjectDraft) (*domain.Project, error)
	// Update changes deadline and/or status of a client's own project.
	// callerID guards ownership; any valid status value is accepted.
	Update(ctx context.Context, callerID, projectID int64, update ProjectUpdate) (*domain.Project, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Project, error)
	// Enroll records an enrollment fact for the student and forces the
	// project to in_progress.
	Enroll(ctx context.Context, projectID, studentID int64) error
	Dashboard(ctx context.Context, user *domain.User) (*StudentDashboard, error)
}

// FreelancerService handles applications to become a freelancer.
// Applications are approved on the spot, so Apply both stores the
// application and promotes the student.
type FreelancerService interface {
	Apply(ctx context.Context, input ApplicationInput) (*domain.User, error)
}
