package handler

import (
	"errors"
	"net/http"

	"github.com/isrcorgin/ISRC-Backend/internal/certificate"
	"github.com/isrcorgin/ISRC-Backend/internal/middleware"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"
	"github.com/isrcorgin/ISRC-Backend/internal/service"

	"github.com/gin-gonic/gin"
)

type OlympiadHandler interface {
	SubmitForm(c *gin.Context)
	RegistrationStatus(c *gin.Context)
	Profile(c *gin.Context)
	AllEntries(c *gin.Context)
	Standard(c *gin.Context)
	CreateOrder(c *gin.Context)
	ConfirmPayment(c *gin.Context)
	CanAttempt(c *gin.Context)
	StoreMarks(c *gin.Context)
	StoreMockMarks(c *gin.Context)
	MockRank(c *gin.Context)
}

type olympiadHandler struct {
	olympiad service.OlympiadService
}

func NewOlympiadHandler(olympiad service.OlympiadService) OlympiadHandler {
	return &olympiadHandler{olympiad: olympiad}
}

func (h *olympiadHandler) SubmitForm(c *gin.Context) {
	var form map[string]interface{}
	if err := c.ShouldBindJSON(&form); err != nil || len(form) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "form fields are required"})
		return
	}

	err := h.olympiad.SubmitForm(c.Request.Context(), middleware.UID(c), form)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "form already submitted"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "form submission failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "form submitted"})
}

func (h *olympiadHandler) RegistrationStatus(c *gin.Context) {
	registered, err := h.olympiad.IsRegistered(c.Request.Context(), middleware.UID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "status check failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isRegistered": registered})
}

func (h *olympiadHandler) Profile(c *gin.Context) {
	entry, err := h.olympiad.Profile(c.Request.Context(), middleware.UID(c))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no olympiad entry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": entry})
}

func (h *olympiadHandler) AllEntries(c *gin.Context) {
	entries, err := h.olympiad.AllEntries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *olympiadHandler) Standard(c *gin.Context) {
	std, err := h.olympiad.Standard(c.Request.Context(), middleware.UID(c))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no olympiad entry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "standard lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"std": std})
}

func (h *olympiadHandler) CreateOrder(c *gin.Context) {
	var req struct {
		Amount *float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount == nil || *req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":        "BAD_REQUEST_ERROR",
				"description": "The amount must be atleast INR 1.00",
				"field":       "amount",
			},
		})
		return
	}

	order, err := h.olympiad.CreateOrder(c.Request.Context(), middleware.UID(c), *req.Amount)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no olympiad entry"})
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

func (h *olympiadHandler) ConfirmPayment(c *gin.Context) {
	var conf service.PaymentConfirmation
	if err := c.ShouldBindJSON(&conf); err != nil ||
		conf.OrderID == "" || conf.PaymentID == "" || conf.Signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order id, payment id and signature are required"})
		return
	}

	err := h.olympiad.ConfirmPayment(c.Request.Context(), middleware.UID(c), conf)
	switch {
	case errors.Is(err, service.ErrBadSignature):
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment verification failed"})
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "entry or order not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment confirmation failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "payment verified"})
	}
}

func (h *olympiadHandler) CanAttempt(c *gin.Context) {
	ok, err := h.olympiad.CanAttempt(c.Request.Context(), middleware.UID(c))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no olympiad entry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "attempt check failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"canAttempt": ok})
}

func (h *olympiadHandler) StoreMarks(c *gin.Context) {
	marks, ok := h.bindMarks(c)
	if !ok {
		return
	}

	improved, err := h.olympiad.StoreMarks(c.Request.Context(), middleware.UID(c), marks)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no olympiad entry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "marks submission failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stored": improved})
}

func (h *olympiadHandler) StoreMockMarks(c *gin.Context) {
	marks, ok := h.bindMarks(c)
	if !ok {
		return
	}

	improved, err := h.olympiad.StoreMockMarks(c.Request.Context(), middleware.UID(c), marks)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no olympiad entry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mock marks submission failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stored": improved})
}

func (h *olympiadHandler) MockRank(c *gin.Context) {
	entry, err := h.olympiad.Profile(c.Request.Context(), middleware.UID(c))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no olympiad entry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "rank lookup failed"})
		return
	}
	if entry.MockMarks == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no mock marks recorded"})
		return
	}

	rank, err := h.olympiad.MockRank(*entry.MockMarks)
	if err != nil {
		if errors.Is(err, certificate.ErrMarksOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "marks out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "rank computation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rank": rank})
}

func (h *olympiadHandler) bindMarks(c *gin.Context) (float64, bool) {
	var req struct {
		Marks *float64 `json:"marks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Marks == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "marks is required"})
		return 0, false
	}
	if *req.Marks < 0 || *req.Marks > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "marks must be between 0 and 100"})
		return 0, false
	}
	return *req.Marks, true
}
