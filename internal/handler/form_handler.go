package handler

import (
	"errors"
	"net/http"

	"github.com/isrcorgin/ISRC-Backend/internal/repo"
	"github.com/isrcorgin/ISRC-Backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FormHandler serves one sub-event form collection; each collection's route
// group wraps its own instance.
type FormHandler interface {
	Submit(c *gin.Context)
	All(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	PhoneNumbers(c *gin.Context)
}

type formHandler struct {
	forms service.FormService
}

func NewFormHandler(forms service.FormService) FormHandler {
	return &formHandler{forms: forms}
}

func (h *formHandler) Submit(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "form fields are required"})
		return
	}

	id, err := h.forms.Submit(c.Request.Context(), fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "form submission failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *formHandler) All(c *gin.Context) {
	docs, err := h.forms.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list forms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"forms": docs})
}

func (h *formHandler) Update(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update payload"})
		return
	}
	id, _ := req["id"].(string)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	delete(req, "id")

	err := h.forms.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "form update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "form updated"})
}

func (h *formHandler) Delete(c *gin.Context) {
	err := h.forms.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "form deletion failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "form deleted"})
}

func (h *formHandler) PhoneNumbers(c *gin.Context) {
	numbers, err := h.forms.PhoneNumbers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to collect numbers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"numbers": numbers})
}
