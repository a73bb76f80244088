package routes

import (
	"github.com/gin-gonic/gin"

	"assistec_quotes/internal/adapter/http/handlers"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.QuotePaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id/breakdown", quoteHandler.UpdateBreakdown)
		quotes.POST("/:id/send", quoteHandler.SendQuote)
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:id/expire", quoteHandler.ExpireQuote)
		quotes.GET("/:id/document", quoteHandler.GetQuoteDocument)

		quotes.POST("/:id/payments", paymentHandler.CreatePaymentByQuoteID)
		quotes.GET("/:id/payments", paymentHandler.GetPaymentByQuoteID)
	}
}
