package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

type stubFreelancerService struct {
	applyFn func(ctx context.Context, input ports.ApplicationInput) (*domain.User, error)
}

func (s *stubFreelancerService) Apply(ctx context.Context, input ports.ApplicationInput) (*domain.User, error) {
	return s.applyFn(ctx, input)
}

func multipartApplication(t *testing.T, resume []byte, resumeName, portfolio, skills string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if resume != nil {
		part, err := writer.CreateFormFile("resume", resumeName)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(resume); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.WriteField("portfolio", portfolio); err != nil {
		t.Fatal(err)
	}
	if err := writer.WriteField("skills", skills); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, writer.FormDataContentType()
}

func TestFreelancerHandler_Apply(t *testing.T) {
	e := echo.New()
	stub := &stubFreelancerService{
		applyFn: func(ctx context.Context, input ports.ApplicationInput) (*domain.User, error) {
			if input.StudentID != 7 {
				t.Fatalf("student must come from the session, got %d", input.StudentID)
			}
			if string(input.Resume) != "resume body" || input.ResumeName != "resume.pdf" {
				t.Fatalf("resume must pass through: %q %q", input.Resume, input.ResumeName)
			}
			if input.Portfolio != "https://portfolio.example.com" || input.Skills != "Go, React" {
				t.Fatalf("form fields must pass through: %+v", input)
			}
			return &domain.User{ID: 7, Name: "John Doe", Email: "student@example.com", Role: domain.RoleFreelancer}, nil
		},
	}
	h := NewFreelancerHandler(stub)

	body, contentType := multipartApplication(t, []byte("resume body"), "resume.pdf", "https://portfolio.example.com", "Go, React")
	req := httptest.NewRequest(http.MethodPost, "/apply-freelancer", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	asStudent(c, 7)

	if err := h.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["role"] != domain.RoleFreelancer {
		t.Fatalf("response must carry the promoted identity: %+v", resp)
	}
}

func TestFreelancerHandler_Apply_NoResume(t *testing.T) {
	e := echo.New()
	stub := &stubFreelancerService{
		applyFn: func(ctx context.Context, input ports.ApplicationInput) (*domain.User, error) {
			if input.Resume != nil {
				t.Fatalf("expected no resume, got %d bytes", len(input.Resume))
			}
			return &domain.User{ID: 7, Role: domain.RoleFreelancer}, nil
		},
	}
	h := NewFreelancerHandler(stub)

	body, contentType := multipartApplication(t, nil, "", "https://portfolio.example.com", "Go")
	req := httptest.NewRequest(http.MethodPost, "/apply-freelancer", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	asStudent(c, 7)

	if err := h.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestFreelancerHandler_Apply_Unauthenticated(t *testing.T) {
	e := echo.New()
	h := NewFreelancerHandler(&stubFreelancerService{})

	body, contentType := multipartApplication(t, nil, "", "", "")
	req := httptest.NewRequest(http.MethodPost, "/apply-freelancer", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Apply(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestFreelancerHandler_Apply_ServiceFailure(t *testing.T) {
	e := echo.New()
	stub := &stubFreelancerService{
		applyFn: func(ctx context.Context, input ports.ApplicationInput) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewFreelancerHandler(stub)

	body, contentType := multipartApplication(t, nil, "", "", "")
	req := httptest.NewRequest(http.MethodPost, "/apply-freelancer", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	asStudent(c, 7)

	if err := h.Apply(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
