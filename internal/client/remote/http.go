// Package remote contains the two implementations of the remote boundary
// the client stores call through: a real HTTP client speaking the
// marketplace wire contract, and an in-memory fake for tests and demos.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTPBoundary talks to the marketplace server. Session state rides on an
// http-only cookie held in the client's jar; the boundary additionally
// remembers the role of the last successful login so Projects() can pick the
// right dashboard endpoint.
type HTTPBoundary struct {
	baseURL string
	client  *http.Client

	mu   sync.Mutex
	role string
}

// NewHTTPBoundary builds a boundary for the given base URL. A nil client
// gets a default one with a fresh cookie jar.
func NewHTTPBoundary(baseURL string, client *http.Client) (*HTTPBoundary, error) {
	if client == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("remote: cookie jar: %w", err)
		}
		client = &http.Client{Timeout: defaultHTTPTimeout, Jar: jar}
	}
	return &HTTPBoundary{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}, nil
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (b *HTTPBoundary) StudentLogin(ctx context.Context, email, password string) (*domain.User, error) {
	var user domain.User
	err := b.postJSON(ctx, "/student-login", credentialsPayload{Email: email, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	b.setRole(domain.RoleStudent)
	return &user, nil
}

func (b *HTTPBoundary) ClientLogin(ctx context.Context, email, password string) (*domain.User, error) {
	var user domain.User
	err := b.postJSON(ctx, "/client-login", credentialsPayload{Email: email, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	b.setRole(domain.RoleClient)
	return &user, nil
}

func (b *HTTPBoundary) RegisterStudent(ctx context.Context, reg ports.StudentRegistration) error {
	payload := map[string]string{
		"name":       reg.Name,
		"email":      reg.Email,
		"password":   reg.Password,
		"phone":      reg.Phone,
		"college":    reg.College,
		"department": reg.Department,
		"year":       reg.Year,
		"skills":     reg.Skills,
		"portfolio":  reg.Portfolio,
	}
	return b.postJSON(ctx, "/register-student", payload, nil)
}

func (b *HTTPBoundary) RegisterClient(ctx context.Context, reg ports.ClientRegistration) error {
	payload := map[string]string{
		"name":         reg.Name,
		"email":        reg.Email,
		"password":     reg.Password,
		"organization": reg.Organization,
		"phone":        reg.Phone,
		"location":     reg.Location,
	}
	return b.postJSON(ctx, "/register-client", payload, nil)
}

// Projects fetches the project set visible to the current session. Clients
// read their own dashboard; the student dashboard additionally carries
// enrollment facts.
func (b *HTTPBoundary) Projects(ctx context.Context) (*ports.ProjectSnapshot, error) {
	if b.currentRole() == domain.RoleClient {
		var projects []domain.Project
		if err := b.getJSON(ctx, "/client-dashboard", &projects); err != nil {
			return nil, err
		}
		return &ports.ProjectSnapshot{Projects: projects}, nil
	}

	var dash ports.StudentDashboard
	if err := b.getJSON(ctx, "/student-dashboard", &dash); err != nil {
		return nil, err
	}

	// Open and enrolled sets can overlap on the wire; keep one copy per ID.
	seen := make(map[int64]struct{}, len(dash.OpenProjects)+len(dash.EnrolledProjects))
	projects := make([]domain.Project, 0, len(dash.OpenProjects)+len(dash.EnrolledProjects))
	for _, p := range append(dash.OpenProjects, dash.EnrolledProjects...) {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		projects = append(projects, p)
	}

	return &ports.ProjectSnapshot{
		Projects:    projects,
		Enrollments: dash.Enrollments,
	}, nil
}

func (b *HTTPBoundary) PostProject(ctx context.Context, draft ports.ProjectDraft) (*domain.Project, error) {
	// The creation endpoint takes skills_required as a comma-joined string.
	payload := map[string]string{
		"title":           draft.Title,
		"description":     draft.Description,
		"skills_required": draft.SkillsJoined,
		"budget":          draft.Budget,
		"deadline":        draft.Deadline,
		"category":        draft.Category,
	}
	var created domain.Project
	if err := b.postJSON(ctx, "/post-project", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (b *HTTPBoundary) UpdateProject(ctx context.Context, projectID int64, update ports.ProjectUpdate) (*domain.Project, error) {
	payload := map[string]string{}
	if update.Deadline != nil {
		payload["deadline"] = *update.Deadline
	}
	if update.Status != nil {
		payload["status"] = string(*update.Status)
	}
	var updated domain.Project
	path := fmt.Sprintf("/update-project/%d", projectID)
	if err := b.postJSON(ctx, path, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (b *HTTPBoundary) Enroll(ctx context.Context, projectID int64) error {
	return b.getJSON(ctx, fmt.Sprintf("/enroll/%d", projectID), nil)
}

func (b *HTTPBoundary) ApplyFreelancer(ctx context.Context, input ports.ApplicationInput) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("resume", input.ResumeName)
	if err != nil {
		return fmt.Errorf("remote: multipart resume: %w", err)
	}
	if _, err := part.Write(input.Resume); err != nil {
		return fmt.Errorf("remote: multipart resume: %w", err)
	}
	if err := writer.WriteField("portfolio", input.Portfolio); err != nil {
		return fmt.Errorf("remote: multipart field: %w", err)
	}
	if err := writer.WriteField("skills", input.Skills); err != nil {
		return fmt.Errorf("remote: multipart field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("remote: multipart close: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/apply-freelancer", &buf)
	if err != nil {
		return fmt.Errorf("remote: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return b.do(req, nil)
}

func (b *HTTPBoundary) Logout(ctx context.Context) error {
	err := b.postJSON(ctx, "/logout", struct{}{}, nil)
	b.setRole("")
	return err
}

func (b *HTTPBoundary) setRole(role string) {
	b.mu.Lock()
	b.role = role
	b.mu.Unlock()
}

func (b *HTTPBoundary) currentRole() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.role
}

func (b *HTTPBoundary) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("remote: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("remote: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return b.do(req, out)
}

func (b *HTTPBoundary) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("remote: build request: %w", err)
	}
	return b.do(req, out)
}

// do executes the request and decodes a JSON body into out when non-nil.
// Every non-2xx response is a uniform failure; callers never branch on
// status codes.
func (b *HTTPBoundary) do(req *http.Request, out any) error {
	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("remote: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("remote: %s %s: %s", req.Method, req.URL.Path, serverMessage(resp.Body, resp.Status))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote: decode response: %w", err)
	}
	return nil
}

// serverMessage extracts the server's error envelope when present, falling
// back to the HTTP status line.
func serverMessage(body io.Reader, status string) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return status
}
