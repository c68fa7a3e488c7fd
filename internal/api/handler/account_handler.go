package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hearthapp/hearth-api/internal/api/metrics"
	"github.com/hearthapp/hearth-api/internal/core/domain"
	"github.com/hearthapp/hearth-api/internal/core/ports"
)

type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register creates a new user account. It does not log the user in.
//
// @Summary      Register a new user
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.accounts.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		return err
	}
	metrics.AccountsRegisteredTotal.Inc()

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Login exchanges credentials for a bearer token.
//
// @Summary      Login
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest        true  "Username and password"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.accounts.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{Token: res.Token, Username: res.Username})
}

// Me returns the authenticated caller.
//
// @Summary      Current user
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{Username: id.Username})
}

// Users lists every other registered user, ordered by username.
//
// @Summary      User directory
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/users [get]
func (h *AccountHandler) Users(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	users, err := h.accounts.Directory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}
