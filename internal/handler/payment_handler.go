package handler

import (
	"errors"
	"net/http"

	"github.com/isrcorgin/ISRC-Backend/internal/middleware"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"
	"github.com/isrcorgin/ISRC-Backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler interface {
	CreateOrder(c *gin.Context)
	Confirm(c *gin.Context)
}

type paymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) PaymentHandler {
	return &paymentHandler{payments: payments}
}

func (h *paymentHandler) CreateOrder(c *gin.Context) {
	var req struct {
		Amount *float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount == nil || *req.Amount <= 0 {
		// Gateway-shaped error body, which the checkout frontend expects.
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":        "BAD_REQUEST_ERROR",
				"description": "The amount must be atleast INR 1.00",
				"field":       "amount",
			},
		})
		return
	}

	order, err := h.payments.CreateOrder(c.Request.Context(), middleware.UID(c), *req.Amount)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order creation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"receipt":  order.Receipt,
	})
}

func (h *paymentHandler) Confirm(c *gin.Context) {
	var conf service.PaymentConfirmation
	if err := c.ShouldBindJSON(&conf); err != nil ||
		conf.OrderID == "" || conf.PaymentID == "" || conf.Signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order id, payment id and signature are required"})
		return
	}

	results, err := h.payments.Confirm(c.Request.Context(), middleware.UID(c), conf)
	switch {
	case errors.Is(err, service.ErrBadSignature):
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment verification failed"})
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user or order not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment confirmation failed"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":      "payment verified",
			"certificates": results,
		})
	}
}
