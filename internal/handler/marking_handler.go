package handler

import (
	"errors"
	"net/http"

	"github.com/isrcorgin/ISRC-Backend/internal/middleware"
	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"
	"github.com/isrcorgin/ISRC-Backend/internal/service"

	"github.com/gin-gonic/gin"
)

type MarkingHandler interface {
	SubmitMarks(c *gin.Context)
	Result(c *gin.Context)
	MarkAttendance(c *gin.Context)
}

type markingHandler struct {
	marking service.MarkingService
}

func NewMarkingHandler(marking service.MarkingService) MarkingHandler {
	return &markingHandler{marking: marking}
}

func (h *markingHandler) SubmitMarks(c *gin.Context) {
	var req struct {
		UID   string           `json:"uid"`
		Marks model.MarksSheet `json:"marks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid marks payload"})
		return
	}
	uid := req.UID
	if uid == "" {
		uid = middleware.UID(c)
	}

	totals, err := h.marking.SubmitMarks(c.Request.Context(), uid, req.Marks)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "marks submission failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

func (h *markingHandler) Result(c *gin.Context) {
	sheet, err := h.marking.Result(c.Request.Context(), middleware.UID(c))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no marks recorded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "result lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"marks": sheet})
}

func (h *markingHandler) MarkAttendance(c *gin.Context) {
	err := h.marking.MarkAttendance(c.Request.Context(), c.Param("uid"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "attendance update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "attendance marked"})
}
