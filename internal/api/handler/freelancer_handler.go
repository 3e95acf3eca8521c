package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillhive/marketplace/internal/api/metrics"
	"github.com/skillhive/marketplace/internal/core/ports"
)

// maxResumeSize caps resume uploads at 5 MiB.
const maxResumeSize = 5 << 20

type FreelancerHandler struct {
	freelancerService ports.FreelancerService
}

func NewFreelancerHandler(freelancerService ports.FreelancerService) *FreelancerHandler {
	return &FreelancerHandler{freelancerService: freelancerService}
}

// Apply accepts a multipart freelancer application: a resume file plus
// portfolio and skills fields. Applications are approved immediately; the
// response carries the promoted identity.
//
// @Summary      Apply to become a freelancer
// @Tags         freelancers
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume     formData  file    false  "Resume file"
// @Param        portfolio  formData  string  false  "Portfolio URL"
// @Param        skills     formData  string  false  "Skill summary"
// @Success      200  {object}  registerResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /apply-freelancer [post]
func (h *FreelancerHandler) Apply(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	input := ports.ApplicationInput{
		StudentID: user.ID,
		Portfolio: c.FormValue("portfolio"),
		Skills:    c.FormValue("skills"),
	}

	if fileHeader, err := c.FormFile("resume"); err == nil {
		if fileHeader.Size > maxResumeSize {
			return echo.NewHTTPError(http.StatusBadRequest, "resume too large")
		}
		file, err := fileHeader.Open()
		if err != nil {
			return fmt.Errorf("open resume: %w", err)
		}
		defer file.Close()

		body, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}
		input.Resume = body
		input.ResumeName = fileHeader.Filename
	}

	promoted, err := h.freelancerService.Apply(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.FreelancerApplicationsTotal.Inc()
	return c.JSON(http.StatusOK, registerResponse{User: promoted})
}
