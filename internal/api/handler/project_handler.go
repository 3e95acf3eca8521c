package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skillhive/marketplace/internal/api/metrics"
	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ClientDashboard lists the authenticated client's own projects.
//
// @Summary      Client dashboard
// @Tags         projects
// @Produce      json
// @Success      200  {array}   domain.Project
// @Failure      401  {object}  map[string]string
// @Router       /client-dashboard [get]
func (h *ProjectHandler) ClientDashboard(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.ListByClient(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return c.JSON(http.StatusOK, projects)
}

// StudentDashboard returns the open projects, the student's enrolled
// projects and the raw enrollment facts in one payload.
//
// @Summary      Student dashboard
// @Tags         projects
// @Produce      json
// @Success      200  {object}  ports.StudentDashboard
// @Failure      401  {object}  map[string]string
// @Router       /student-dashboard [get]
func (h *ProjectHandler) StudentDashboard(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	dash, err := h.projectService.Dashboard(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dash)
}

// PostProject creates a project owned by the authenticated client. New
// projects always open for enrollment regardless of submitted status.
//
// @Summary      Post a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      postProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /post-project [post]
func (h *ProjectHandler) PostProject(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req postProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.projectService.Create(c.Request().Context(), ports.ProjectDraft{
		ClientID:     user.ID,
		Title:        req.Title,
		Description:  req.Description,
		SkillsJoined: req.Skills,
		Budget:       req.Budget,
		Deadline:     req.Deadline,
		Category:     req.Category,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(created.Category).Inc()
	return c.JSON(http.StatusCreated, created)
}

// UpdateProject changes the deadline and/or status of the client's own
// project.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Project ID"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /update-project/{id} [post]
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projectID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := ports.ProjectUpdate{Deadline: req.Deadline}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		update.Status = &status
	}

	updated, err := h.projectService.Update(c.Request().Context(), user.ID, projectID, update)
	if err != nil {
		return err
	}

	statusLabel := "unchanged"
	if update.Status != nil {
		statusLabel = string(*update.Status)
	}
	metrics.ProjectUpdatesTotal.WithLabelValues(statusLabel).Inc()
	return c.JSON(http.StatusOK, updated)
}

// Enroll signs the authenticated student up for a project.
//
// @Summary      Enroll in a project
// @Tags         projects
// @Produce      json
// @Param        id  path  int  true  "Project ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /enroll/{id} [get]
func (h *ProjectHandler) Enroll(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projectID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.projectService.Enroll(c.Request().Context(), projectID, user.ID); err != nil {
		return err
	}

	metrics.EnrollmentsTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "enrolled"})
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid project id")
	}
	return id, nil
}
