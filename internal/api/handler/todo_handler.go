package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hearthapp/hearth-api/internal/api/metrics"
	"github.com/hearthapp/hearth-api/internal/core/ports"
)

type TodoHandler struct {
	todos ports.TodoService
}

func NewTodoHandler(todos ports.TodoService) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// List returns the caller's todos in creation order.
//
// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   todoResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	todos, err := h.todos.List(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTodoResponses(todos))
}

// Create adds an open todo for the caller.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTodoRequest  true  "Task"
// @Success      200   {object}  todoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	todo, err := h.todos.Create(c.Request().Context(), id, req.Task)
	if err != nil {
		return err
	}
	metrics.TodosCreatedTotal.Inc()

	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Toggle flips the done flag of one of the caller's todos.
//
// @Summary      Toggle a todo
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  todoResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/todos/{id} [put]
func (h *TodoHandler) Toggle(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	todo, err := h.todos.Toggle(c.Request().Context(), id, c.Param("id"))
	if err != nil {
		return err
	}
	metrics.TodosToggledTotal.Inc()

	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Delete removes one of the caller's todos. Unknown or foreign ids succeed
// without effect.
//
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	if err := h.todos.Delete(c.Request().Context(), id, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
