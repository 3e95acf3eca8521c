package handler

import "github.com/skillhive/marketplace/internal/core/domain"

// ── Auth ─────────────────────────────────────────────────────────────────────

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerStudentRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Phone      string `json:"phone"`
	College    string `json:"college"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Skills     string `json:"skills"`
	Portfolio  string `json:"portfolio"`
}

type registerClientRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Organization string `json:"organization"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
}

// loginResponse flattens the identity so clients can decode it straight
// into a user value; the token rides alongside for non-cookie API clients.
type loginResponse struct {
	domain.User
	Token string `json:"token,omitempty"`
}

type registerResponse struct {
	User *domain.User `json:"user"`
}

// ── Projects ─────────────────────────────────────────────────────────────────

// postProjectRequest carries skills_required in its wire form, a
// comma-joined string. Splitting happens server-side.
type postProjectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Skills      string `json:"skills_required"`
	Budget      string `json:"budget"`
	Deadline    string `json:"deadline"`
	Category    string `json:"category"`
}

type updateProjectRequest struct {
	Deadline *string `json:"deadline"`
	Status   *string `json:"status" validate:"omitempty,oneof=open in_progress completed cancelled"`
}
