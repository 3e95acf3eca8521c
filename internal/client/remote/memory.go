package remote

import (
	"context"
	"sync"
	"time"

	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

type account struct {
	user     domain.User
	password string
}

// MemoryBoundary is the in-memory implementation of the remote boundary:
// deterministic, dependency-free, used by tests and demo runs. It plays the
// server's part (assigning project IDs, recording enrollments, promoting
// freelancers) against purely local state.
//
// Unlike the HTTP boundary it returns the full project set regardless of the
// session role; ownership filtering is a real server concern.
type MemoryBoundary struct {
	mu          sync.Mutex
	students    []account
	clients     []account
	projects    []domain.Project
	enrollments []domain.Enrollment
	session     *domain.User

	// Latency, when set, is slept before every operation to simulate a
	// round trip.
	Latency time.Duration

	nextErr error
}

func NewMemoryBoundary() *MemoryBoundary {
	return &MemoryBoundary{}
}

// NewDemoBoundary returns a boundary seeded with the demo marketplace: two
// student-family accounts, one client, five projects.
func NewDemoBoundary() *MemoryBoundary {
	b := NewMemoryBoundary()
	b.AddStudent(domain.User{ID: 1, Name: "John Doe", Email: "student@example.com", Role: domain.RoleStudent}, "password")
	b.AddStudent(domain.User{ID: 2, Name: "Jane Smith", Email: "freelancer@example.com", Role: domain.RoleFreelancer}, "password")
	b.AddClient(domain.User{ID: 1, Name: "Acme Corp", Email: "client@example.com", Role: domain.RoleClient}, "password")

	b.AddProject(domain.Project{
		ID: 1, ClientID: 1,
		Title:          "E-commerce Website Development",
		Description:    "Responsive e-commerce website with product listings, cart and payment integration.",
		SkillsRequired: domain.SkillList{"React", "Node.js", "MongoDB", "Express"},
		Budget:         "500", Deadline: "2025-06-30", Category: "Web Development",
		Status: domain.StatusOpen,
	})
	b.AddProject(domain.Project{
		ID: 2, ClientID: 1,
		Title:          "Mobile App UI Design",
		Description:    "Modern UI/UX for a fitness tracking mobile app.",
		SkillsRequired: domain.SkillList{"UI/UX", "Figma", "Adobe XD", "Mobile Design"},
		Budget:         "350", Deadline: "2025-06-15", Category: "UI/UX Design",
		Status: domain.StatusInProgress,
	})
	b.AddProject(domain.Project{
		ID: 3, ClientID: 1,
		Title:          "Machine Learning Model for Text Classification",
		Description:    "Classify customer feedback into positive, negative and neutral categories.",
		SkillsRequired: domain.SkillList{"Python", "Machine Learning", "NLP", "TensorFlow"},
		Budget:         "800", Deadline: "2025-07-20", Category: "Machine Learning",
		Status: domain.StatusOpen,
	})
	b.AddProject(domain.Project{
		ID: 4, ClientID: 2,
		Title:          "Video Editing for Marketing Campaign",
		Description:    "Edit raw footage into a two-minute promotional video.",
		SkillsRequired: domain.SkillList{"Video Editing", "Adobe Premiere", "After Effects"},
		Budget:         "250", Deadline: "2025-05-25", Category: "Multimedia",
		Status: domain.StatusCompleted,
	})
	b.AddProject(domain.Project{
		ID: 5, ClientID: 2,
		Title:          "Social Media Content Creation",
		Description:    "Graphics, captions and hashtag research for social platforms.",
		SkillsRequired: domain.SkillList{"Content Writing", "Graphic Design", "Social Media Marketing"},
		Budget:         "180", Deadline: "2025-06-01", Category: "Marketing",
		Status: domain.StatusOpen,
	})
	return b
}

// AddStudent seeds a student-family account.
func (b *MemoryBoundary) AddStudent(u domain.User, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.students = append(b.students, account{user: u, password: password})
}

// AddClient seeds a client account.
func (b *MemoryBoundary) AddClient(u domain.User, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients = append(b.clients, account{user: u, password: password})
}

// AddProject seeds a project as-is.
func (b *MemoryBoundary) AddProject(p domain.Project) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.projects = append(b.projects, p)
}

// AddEnrollment seeds an enrollment fact.
func (b *MemoryBoundary) AddEnrollment(e domain.Enrollment) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enrollments = append(b.enrollments, e)
}

// FailNext makes the next boundary call return err instead of succeeding.
func (b *MemoryBoundary) FailNext(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextErr = err
}

// Session returns the identity of the current fake session, if any.
func (b *MemoryBoundary) Session() *domain.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session == nil {
		return nil
	}
	clone := *b.session
	return &clone
}

// begin handles latency simulation, context cancellation and forced errors.
func (b *MemoryBoundary) begin(ctx context.Context) error {
	if b.Latency > 0 {
		select {
		case <-time.After(b.Latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	b.mu.Lock()
	err := b.nextErr
	b.nextErr = nil
	b.mu.Unlock()
	if err != nil {
		return err
	}
	return ctx.Err()
}

func (b *MemoryBoundary) login(accounts []account, email, password string) (*domain.User, error) {
	for _, acc := range accounts {
		if acc.user.Email == email && acc.password == password {
			clone := acc.user
			b.session = &clone
			result := clone
			return &result, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (b *MemoryBoundary) StudentLogin(ctx context.Context, email, password string) (*domain.User, error) {
	if err := b.begin(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.login(b.students, email, password)
}

func (b *MemoryBoundary) ClientLogin(ctx context.Context, email, password string) (*domain.User, error) {
	if err := b.begin(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.login(b.clients, email, password)
}

func (b *MemoryBoundary) RegisterStudent(ctx context.Context, reg ports.StudentRegistration) error {
	if err := b.begin(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, acc := range b.students {
		if acc.user.Email == reg.Email {
			return domain.ErrUserExists
		}
	}
	b.students = append(b.students, account{
		user: domain.User{
			ID:    int64(len(b.students) + 1),
			Name:  reg.Name,
			Email: reg.Email,
			Role:  domain.RoleStudent,
		},
		password: reg.Password,
	})
	return nil
}

func (b *MemoryBoundary) RegisterClient(ctx context.Context, reg ports.ClientRegistration) error {
	if err := b.begin(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, acc := range b.clients {
		if acc.user.Email == reg.Email {
			return domain.ErrUserExists
		}
	}
	b.clients = append(b.clients, account{
		user: domain.User{
			ID:    int64(len(b.clients) + 1),
			Name:  reg.Name,
			Email: reg.Email,
			Role:  domain.RoleClient,
		},
		password: reg.Password,
	})
	return nil
}

func (b *MemoryBoundary) Projects(ctx context.Context) (*ports.ProjectSnapshot, error) {
	if err := b.begin(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	snapshot := &ports.ProjectSnapshot{
		Projects:    make([]domain.Project, len(b.projects)),
		Enrollments: make([]domain.Enrollment, len(b.enrollments)),
	}
	copy(snapshot.Projects, b.projects)
	copy(snapshot.Enrollments, b.enrollments)
	return snapshot, nil
}

func (b *MemoryBoundary) PostProject(ctx context.Context, draft ports.ProjectDraft) (*domain.Project, error) {
	if err := b.begin(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	var maxID int64
	for _, p := range b.projects {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	project := domain.Project{
		ID:             maxID + 1,
		ClientID:       draft.ClientID,
		Title:          draft.Title,
		Description:    draft.Description,
		SkillsRequired: domain.SplitSkills(draft.SkillsJoined),
		Budget:         draft.Budget,
		Deadline:       draft.Deadline,
		Category:       draft.Category,
		Status:         domain.StatusOpen,
	}
	b.projects = append(b.projects, project)
	clone := project
	return &clone, nil
}

func (b *MemoryBoundary) UpdateProject(ctx context.Context, projectID int64, update ports.ProjectUpdate) (*domain.Project, error) {
	if err := b.begin(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.projects {
		if b.projects[i].ID != projectID {
			continue
		}
		if update.Deadline != nil {
			b.projects[i].Deadline = *update.Deadline
		}
		if update.Status != nil {
			b.projects[i].Status = *update.Status
		}
		clone := b.projects[i]
		return &clone, nil
	}
	return nil, domain.ErrProjectNotFound
}

func (b *MemoryBoundary) Enroll(ctx context.Context, projectID int64) error {
	if err := b.begin(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return domain.ErrForbidden
	}
	for i := range b.projects {
		if b.projects[i].ID != projectID {
			continue
		}
		for _, e := range b.enrollments {
			if e.ProjectID == projectID && e.StudentID == b.session.ID {
				return domain.ErrAlreadyEnrolled
			}
		}
		b.projects[i].Status = domain.StatusInProgress
		b.enrollments = append(b.enrollments, domain.Enrollment{
			ProjectID:  projectID,
			StudentID:  b.session.ID,
			EnrolledAt: time.Now().UTC(),
		})
		return nil
	}
	return domain.ErrProjectNotFound
}

func (b *MemoryBoundary) ApplyFreelancer(ctx context.Context, input ports.ApplicationInput) error {
	if err := b.begin(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil || b.session.Role != domain.RoleStudent {
		return domain.ErrForbidden
	}
	for i := range b.students {
		if b.students[i].user.ID == b.session.ID {
			b.students[i].user.Role = domain.RoleFreelancer
			b.session.Role = domain.RoleFreelancer
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (b *MemoryBoundary) Logout(ctx context.Context) error {
	if err := b.begin(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.session = nil
	return nil
}
