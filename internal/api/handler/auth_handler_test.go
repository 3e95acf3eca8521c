package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	apimw "github.com/skillhive/marketplace/internal/api/middleware"
	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

type stubAuthService struct {
	registerStudentFn func(ctx context.Context, reg ports.StudentRegistration) (*domain.User, error)
	registerClientFn  func(ctx context.Context, reg ports.ClientRegistration) (*domain.User, error)
	loginFn           func(ctx context.Context, email, password, role string) (*ports.LoginResult, error)
	logoutFn          func(ctx context.Context, tokenID string) error
}

func (s *stubAuthService) RegisterStudent(ctx context.Context, reg ports.StudentRegistration) (*domain.User, error) {
	return s.registerStudentFn(ctx, reg)
}

func (s *stubAuthService) RegisterClient(ctx context.Context, reg ports.ClientRegistration) (*domain.User, error) {
	return s.registerClientFn(ctx, reg)
}

func (s *stubAuthService) Login(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password, role)
}

func (s *stubAuthService) Logout(ctx context.Context, tokenID string) error {
	return s.logoutFn(ctx, tokenID)
}

func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_StudentLogin_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
			if email != "student@example.com" || password != "password" || role != domain.RoleStudent {
				t.Fatalf("unexpected args: %s %s %s", email, password, role)
			}
			return &ports.LoginResult{
				Token: "token123",
				User:  &domain.User{ID: 1, Name: "John Doe", Email: email, Role: domain.RoleStudent},
			}, nil
		},
	}
	h := NewAuthHandler(stub, 24*time.Hour)

	c, rec := newTestContext(e, http.MethodPost, "/student-login", `{"email":"student@example.com","password":"password"}`)
	if err := h.StudentLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["role"] != domain.RoleStudent || resp["name"] != "John Doe" {
		t.Fatalf("identity must flatten into the response: %+v", resp)
	}
	if resp["token"] != "token123" {
		t.Fatalf("token missing from response: %+v", resp)
	}

	cookie := findCookie(rec, apimw.SessionCookie)
	if cookie == nil {
		t.Fatal("login must set the session cookie")
	}
	if cookie.Value != "token123" || !cookie.HttpOnly {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
}

func TestAuthHandler_ClientLogin_UsesClientFamily(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
			if role != domain.RoleClient {
				t.Fatalf("expected client family, got %q", role)
			}
			return &ports.LoginResult{
				Token: "t",
				User:  &domain.User{ID: 1, Name: "Acme Corp", Email: email, Role: domain.RoleClient},
			}, nil
		},
	}
	h := NewAuthHandler(stub, 24*time.Hour)

	c, rec := newTestContext(e, http.MethodPost, "/client-login", `{"email":"client@example.com","password":"password"}`)
	if err := h.ClientLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, 24*time.Hour)

	c, rec := newTestContext(e, http.MethodPost, "/student-login", `{"email":"student@example.com","password":"wrong"}`)
	err := h.StudentLogin(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if cookie := findCookie(rec, apimw.SessionCookie); cookie != nil {
		t.Fatal("failed login must not set a cookie")
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, 24*time.Hour)

	c, _ := newTestContext(e, http.MethodPost, "/student-login", `{"email":"not-an-email","password":""}`)
	err := h.StudentLogin(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_RegisterStudent_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		registerStudentFn: func(ctx context.Context, reg ports.StudentRegistration) (*domain.User, error) {
			if reg.College != "State University" {
				t.Fatalf("registration fields must pass through: %+v", reg)
			}
			return &domain.User{ID: 1, Name: reg.Name, Email: reg.Email, Role: domain.RoleStudent}, nil
		},
	}
	h := NewAuthHandler(stub, 24*time.Hour)

	body := `{"name":"John Doe","email":"student@example.com","password":"password","college":"State University"}`
	c, rec := newTestContext(e, http.MethodPost, "/register-student", body)
	if err := h.RegisterStudent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if cookie := findCookie(rec, apimw.SessionCookie); cookie != nil {
		t.Fatal("registration must not authenticate")
	}
}

func TestAuthHandler_RegisterClient_Duplicate(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		registerClientFn: func(ctx context.Context, reg ports.ClientRegistration) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub, 24*time.Hour)

	body := `{"name":"Acme Corp","email":"client@example.com","password":"password"}`
	c, _ := newTestContext(e, http.MethodPost, "/register-client", body)
	if err := h.RegisterClient(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()
	revoked := ""
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, tokenID string) error {
			revoked = tokenID
			return nil
		},
	}
	h := NewAuthHandler(stub, 24*time.Hour)

	c, rec := newTestContext(e, http.MethodPost, "/logout", "")
	c.Set("token_id", "session-1")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if revoked != "session-1" {
		t.Fatalf("expected session-1 revoked, got %q", revoked)
	}

	cookie := findCookie(rec, apimw.SessionCookie)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Fatalf("logout must clear the session cookie, got %+v", cookie)
	}
}
