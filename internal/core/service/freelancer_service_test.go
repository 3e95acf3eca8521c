package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

type stubApplicationRepo struct {
	mu   sync.Mutex
	apps []ports.FreelancerApplication
	err  error
}

func (r *stubApplicationRepo) Create(_ context.Context, app *ports.FreelancerApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.apps = append(r.apps, *app)
	return nil
}

func newFreelancerFixture(t *testing.T) (*FreelancerService, *stubUserRepo, *stubApplicationRepo, *domain.User) {
	t.Helper()
	users := newStubUserRepo()
	student, err := users.Create(context.Background(), &ports.StoredUser{
		User:         domain.User{Name: "John Doe", Email: "student@example.com", Role: domain.RoleStudent},
		PasswordHash: "irrelevant",
	})
	if err != nil {
		t.Fatal(err)
	}
	apps := &stubApplicationRepo{}
	svc := NewFreelancerService(users, apps, t.TempDir(), zerolog.Nop())
	return svc, users, apps, student
}

func TestFreelancerService_Apply(t *testing.T) {
	svc, _, apps, student := newFreelancerFixture(t)

	promoted, err := svc.Apply(context.Background(), ports.ApplicationInput{
		StudentID:  student.ID,
		Resume:     []byte("resume body"),
		ResumeName: "resume.pdf",
		Portfolio:  "https://portfolio.example.com",
		Skills:     "Go, React",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if promoted.Role != domain.RoleFreelancer {
		t.Errorf("expected promotion to freelancer, got %q", promoted.Role)
	}

	if len(apps.apps) != 1 {
		t.Fatalf("expected one stored application, got %d", len(apps.apps))
	}
	app := apps.apps[0]
	if app.StudentID != student.ID || app.ResumeName != "resume.pdf" {
		t.Errorf("unexpected application: %+v", app)
	}
	if app.ID == "" || app.AppliedAt.IsZero() {
		t.Errorf("application must carry id and timestamp: %+v", app)
	}

	if filepath.Ext(app.ResumePath) != ".pdf" {
		t.Errorf("resume file must keep its extension, got %q", app.ResumePath)
	}
	body, err := os.ReadFile(app.ResumePath)
	if err != nil {
		t.Fatalf("resume not saved: %v", err)
	}
	if string(body) != "resume body" {
		t.Errorf("resume content mismatch: %q", body)
	}
}

func TestFreelancerService_Apply_NoResume(t *testing.T) {
	svc, _, apps, student := newFreelancerFixture(t)

	_, err := svc.Apply(context.Background(), ports.ApplicationInput{
		StudentID: student.ID,
		Portfolio: "https://portfolio.example.com",
	})
	if err != nil {
		t.Fatalf("apply without resume: %v", err)
	}
	if apps.apps[0].ResumePath != "" {
		t.Errorf("no resume means no stored path, got %q", apps.apps[0].ResumePath)
	}
}

func TestFreelancerService_Apply_StoreFailure(t *testing.T) {
	svc, users, apps, student := newFreelancerFixture(t)
	apps.err = errors.New("mongo down")

	_, err := svc.Apply(context.Background(), ports.ApplicationInput{StudentID: student.ID})
	if err == nil {
		t.Fatal("expected store failure to surface")
	}

	// A failed application must not promote.
	u, findErr := users.FindByID(context.Background(), student.ID)
	if findErr != nil {
		t.Fatal(findErr)
	}
	if u.Role != domain.RoleStudent {
		t.Errorf("role must stay student after failure, got %q", u.Role)
	}
}

func TestFreelancerService_Apply_UnknownStudent(t *testing.T) {
	svc, _, _, _ := newFreelancerFixture(t)

	_, err := svc.Apply(context.Background(), ports.ApplicationInput{StudentID: 404})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
