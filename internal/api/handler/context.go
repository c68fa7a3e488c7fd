package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hearthapp/hearth-api/internal/api/middleware"
	"github.com/hearthapp/hearth-api/internal/core/domain"
)

// caller returns the identity the auth guard attached to the request. A
// missing identity means the route was registered without the guard; fail
// closed.
func caller(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.Identity(c)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}
