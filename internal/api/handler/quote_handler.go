package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hearthapp/hearth-api/internal/api/metrics"
	"github.com/hearthapp/hearth-api/internal/core/ports"
)

type QuoteHandler struct {
	quotes ports.QuoteService
}

func NewQuoteHandler(quotes ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// Board returns the newest quotes. No authentication required.
//
// @Summary      Quote board
// @Tags         quotes
// @Produce      json
// @Success      200  {array}  quoteResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) Board(c echo.Context) error {
	quotes, err := h.quotes.Board(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuoteResponses(quotes))
}

// Create posts a quote under the caller's username.
//
// @Summary      Post a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createQuoteRequest  true  "Quote text"
// @Success      200   {object}  quoteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req createQuoteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	quote, err := h.quotes.Create(c.Request().Context(), id, req.Quote)
	if err != nil {
		return err
	}
	metrics.QuotesCreatedTotal.Inc()

	return c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// Delete removes one of the caller's quotes; other ids are ignored.
//
// @Summary      Delete a quote
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	if err := h.quotes.Delete(c.Request().Context(), id, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
