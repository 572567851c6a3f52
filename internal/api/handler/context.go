package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// identity is the authenticated caller extracted from the JWT claims the Auth
// middleware injected.
type identity struct {
	UserID string
	Email  string
	Name   string
	Role   string
	Token  string
}

// ctxIdentity reads the caller's identity and fast-fails before any service
// call: a missing role proves the middleware did not run, an empty subject
// means the token is structurally valid but unusable.
func ctxIdentity(c echo.Context) (identity, error) {
	id := identity{}
	id.Role, _ = c.Get("role").(string)
	if id.Role == "" {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id.UserID, _ = c.Get("user_id").(string)
	if id.UserID == "" {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
	}

	id.Email, _ = c.Get("email").(string)
	id.Name, _ = c.Get("name").(string)
	id.Token, _ = c.Get("token").(string)
	return id, nil
}
