package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skillhive/marketplace/internal/core/domain"
)

func TestRBAC(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		role    string
		pass    bool
	}{
		{"client on client route", []string{domain.RoleClient}, domain.RoleClient, true},
		{"student on client route", []string{domain.RoleClient}, domain.RoleStudent, false},
		{"student on student-family route", []string{domain.RoleStudent, domain.RoleFreelancer}, domain.RoleStudent, true},
		{"freelancer on student-family route", []string{domain.RoleStudent, domain.RoleFreelancer}, domain.RoleFreelancer, true},
		{"client on student-family route", []string{domain.RoleStudent, domain.RoleFreelancer}, domain.RoleClient, false},
		{"freelancer on freelancer route", []string{domain.RoleFreelancer}, domain.RoleFreelancer, true},
		{"student on freelancer route", []string{domain.RoleFreelancer}, domain.RoleStudent, false},
		{"missing role", []string{domain.RoleClient}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.role != "" {
				c.Set("role", tt.role)
			}

			called := false
			handler := RBAC(tt.allowed...)(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})

			_ = handler(c)
			if called != tt.pass {
				t.Fatalf("called=%v, want %v", called, tt.pass)
			}
			if !tt.pass && rec.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", rec.Code)
			}
		})
	}
}
