package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skillhive/marketplace/internal/api/metrics"
	apimw "github.com/skillhive/marketplace/internal/api/middleware"
	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, tokenTTL: tokenTTL}
}

// StudentLogin authenticates against the student family (students and
// freelancers share it).
//
// @Summary      Student login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /student-login [post]
func (h *AuthHandler) StudentLogin(c echo.Context) error {
	return h.login(c, domain.RoleStudent)
}

// ClientLogin authenticates client accounts.
//
// @Summary      Client login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /client-login [post]
func (h *AuthHandler) ClientLogin(c echo.Context) error {
	return h.login(c, domain.RoleClient)
}

func (h *AuthHandler) login(c echo.Context, role string) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, role)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(role, "failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues(role, "success").Inc()

	h.setSessionCookie(c, result.Token)
	return c.JSON(http.StatusOK, loginResponse{User: *result.User, Token: result.Token})
}

// RegisterStudent creates a student account. Registration never logs the
// account in; the client is expected to follow up with a login.
//
// @Summary      Register a student
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerStudentRequest  true  "Student details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register-student [post]
func (h *AuthHandler) RegisterStudent(c echo.Context) error {
	var req registerStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.RegisterStudent(c.Request().Context(), ports.StudentRegistration{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		College:    req.College,
		Department: req.Department,
		Year:       req.Year,
		Skills:     req.Skills,
		Portfolio:  req.Portfolio,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(domain.RoleStudent).Inc()
	return c.JSON(http.StatusCreated, registerResponse{User: user})
}

// RegisterClient creates a client account.
//
// @Summary      Register a client
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerClientRequest  true  "Client details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register-client [post]
func (h *AuthHandler) RegisterClient(c echo.Context) error {
	var req registerClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.RegisterClient(c.Request().Context(), ports.ClientRegistration{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Organization: req.Organization,
		Phone:        req.Phone,
		Location:     req.Location,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(domain.RoleClient).Inc()
	return c.JSON(http.StatusCreated, registerResponse{User: user})
}

// Logout revokes the current session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), ctxTokenID(c)); err != nil {
		return err
	}
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     apimw.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     apimw.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
