package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "assistec_quotes/internal/adapter/http/dto/request"
	response "assistec_quotes/internal/adapter/http/dto/response"
	"assistec_quotes/internal/domain/entities"
	"assistec_quotes/internal/domain/pricing"
	"assistec_quotes/internal/usecase"
	"assistec_quotes/pkg"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for repair quotes.
//
// The error mapping distinguishes "fix your input" (validation, 400) from
// "this action is no longer possible" (invalid transition, 409).

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary  Create a draft quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    quote body request.QuoteCreateRequest true "Quote inputs"
// @Success  201 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	orderID := payload.ResolveOrderID()
	if orderID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateDraft(c.Request.Context(), orderID, payload.ToBreakdownSpec())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// UpdateBreakdown godoc
// @Summary  Replace the breakdown of a draft quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id path string true "Quote ID"
// @Param    breakdown body request.BreakdownUpdateRequest true "Breakdown inputs"
// @Success  200 {object} response.QuoteResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/breakdown [put]
func (h *QuoteHandler) UpdateBreakdown(c *gin.Context) {
	var payload request.BreakdownUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.ReplaceBreakdown(c.Request.Context(), c.Param("id"), payload.ToBreakdownSpec())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// SendQuote godoc
// @Summary  Send a draft quote to the client
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuoteResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/send [post]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	quote, err := h.usecase.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ApproveQuote godoc
// @Summary  Approve a sent quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id path string true "Quote ID"
// @Param    approval body request.QuoteApproveRequest true "Approval decision"
// @Success  200 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/approve [patch]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	var payload request.QuoteApproveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Approve(
		c.Request.Context(),
		c.Param("id"),
		entities.PaymentMethod(payload.PaymentMethod),
		payload.ApprovedBy,
		payload.ClientNotes,
	)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// RejectQuote godoc
// @Summary  Reject a sent quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id path string true "Quote ID"
// @Param    rejection body request.QuoteRejectRequest true "Rejection decision"
// @Success  200 {object} response.QuoteResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	var payload request.QuoteRejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.Confirm, payload.ClientNotes)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ExpireQuote godoc
// @Summary  Expire a sent quote past its validity window
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuoteResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/expire [patch]
func (h *QuoteHandler) ExpireQuote(c *gin.Context) {
	quote, err := h.usecase.ExpireIfDue(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetQuote godoc
// @Summary  Get a quote by id
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListQuotes godoc
// @Summary  List quotes for a service order
// @Tags     quotes
// @Produce  json
// @Param    order_id query string true "Order ID"
// @Success  200 {array} response.QuoteResponse
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByOrderID(c.Request.Context(), c.Query("order_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuoteDocument godoc
// @Summary  Get the rendered quote document reference
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuoteDocumentResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  503 {object} pkg.HTTPError
// @Router   /quotes/{id}/document [get]
func (h *QuoteHandler) GetQuoteDocument(c *gin.Context) {
	quote, err := h.usecase.Document(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteDocument(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrInvalidInput):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid pricing input", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrPaymentMethodRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_REQUIRED", "A payment method is required to approve a quote", http.StatusBadRequest)
	case errors.Is(err, entities.ErrRejectNotConfirmed):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Rejection requires explicit confirmation", http.StatusBadRequest)
	case errors.Is(err, entities.ErrQuoteNotExpired):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_EXPIRED", "Quote validity has not elapsed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "This action is no longer possible for the quote", http.StatusConflict)
	case errors.Is(err, entities.ErrQuoteFrozen):
		return pkg.NewDomainErrorSimple("QUOTE_FROZEN", "A sent quote can no longer be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteConflict):
		return pkg.NewDomainErrorSimple("QUOTE_CONFLICT", "Quote was modified concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotSent):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_SENT", "Quote has no document before it is sent", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotReady):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_READY", "Quote document rendering is unavailable, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
