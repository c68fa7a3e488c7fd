package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hearthapp/hearth-api/internal/api/metrics"
	"github.com/hearthapp/hearth-api/internal/core/domain"
	"github.com/hearthapp/hearth-api/internal/core/ports"
)

const (
	ctxUserID   = "user_id"
	ctxUsername = "username"
)

// Auth resolves the Authorization header to a user and injects the caller's
// id and username into the context. The header carries the token as is; a
// "Bearer " scheme is accepted and stripped.
func Auth(accounts ports.AccountService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				metrics.AuthRejectionsTotal.Inc()
				return domain.ErrUnauthorized
			}

			id, err := accounts.Authenticate(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					metrics.AuthRejectionsTotal.Inc()
				}
				return err
			}

			SetIdentity(c, *id)
			return next(c)
		}
	}
}

// SetIdentity attaches the caller to the request context.
func SetIdentity(c echo.Context, id domain.Identity) {
	c.Set(ctxUserID, id.UserID)
	c.Set(ctxUsername, id.Username)
}

// Identity returns the caller injected by Auth.
func Identity(c echo.Context) (domain.Identity, bool) {
	userID, _ := c.Get(ctxUserID).(string)
	username, _ := c.Get(ctxUsername).(string)
	if userID == "" {
		return domain.Identity{}, false
	}
	return domain.Identity{UserID: userID, Username: username}, true
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		header = strings.TrimSpace(header[7:])
	}
	return header
}
