package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	response "assistec_quotes/internal/adapter/http/dto/response"
	"assistec_quotes/internal/usecase"
	"assistec_quotes/pkg"
)

// QuotePaymentHandler handles HTTP requests for online quote payments.

type QuotePaymentHandler struct {
	usecase usecase.IQuotePaymentUseCase
}

func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase) *QuotePaymentHandler {
	return &QuotePaymentHandler{usecase: uc}
}

// CreatePaymentByQuoteID godoc
// @Summary  Collect an approved quote through the payment provider
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuotePaymentResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/payments [post]
func (h *QuotePaymentHandler) CreatePaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("id")

	providerPayload, err := readProviderPayload(c)
	if err != nil {
		log.Warn().Err(err).Str("quote_id", quoteID).Msg("invalid payment payload")
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateForQuote(c.Request.Context(), quoteID, providerPayload)
	if err != nil {
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// GetPaymentByQuoteID godoc
// @Summary  Get the latest payment for a quote
// @Tags     payments
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuotePaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id}/payments [get]
func (h *QuotePaymentHandler) GetPaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("id")

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromQuotePayment(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapQuotePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuoteID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentMethodNotOnline):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_ONLINE", "Quote was not approved for online payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
