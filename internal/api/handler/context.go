package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillhive/marketplace/internal/core/domain"
)

// ctxIdentity reconstructs the authenticated user from the claims the Auth
// middleware injected. A missing role or zero ID means the middleware did
// not run on this route; fail with 401 rather than guess.
func ctxIdentity(c echo.Context) (*domain.User, error) {
	role, _ := c.Get("role").(string)
	userID, _ := c.Get("user_id").(int64)
	if role == "" || userID == 0 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("name").(string)
	email, _ := c.Get("email").(string)
	return &domain.User{ID: userID, Name: name, Email: email, Role: role}, nil
}

// ctxTokenID returns the jti of the presented token, empty when absent.
func ctxTokenID(c echo.Context) string {
	tokenID, _ := c.Get("token_id").(string)
	return tokenID
}
