package handler

import (
	"errors"
	"net/http"

	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"
	"github.com/isrcorgin/ISRC-Backend/internal/service"
	"github.com/isrcorgin/ISRC-Backend/internal/spreadsheet"

	"github.com/gin-gonic/gin"
)

type CertificateHandler interface {
	Verify(c *gin.Context)
	Generate(c *gin.Context)
	All(c *gin.Context)
	AllSession(c *gin.Context)
	Delete(c *gin.Context)
	UploadExcel(c *gin.Context)
	MatchExcel(c *gin.Context)
	GenerateOne(c *gin.Context)
	GenerateAll(c *gin.Context)
}

type certificateHandler struct {
	certs service.CertificateService
}

func NewCertificateHandler(certs service.CertificateService) CertificateHandler {
	return &certificateHandler{certs: certs}
}

func (h *certificateHandler) Verify(c *gin.Context) {
	var req struct {
		AuthCode string `json:"authCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "authCode is required"})
		return
	}

	cert, err := h.certs.Verify(c.Request.Context(), req.AuthCode)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "certificate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "certificate lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificate": cert})
}

func (h *certificateHandler) Generate(c *gin.Context) {
	var cert model.Certificate
	if err := c.ShouldBindJSON(&cert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid certificate payload"})
		return
	}
	if cert.Name == "" || cert.AuthCode == "" || cert.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, authCode and type are required"})
		return
	}

	id, err := h.certs.AdminGenerate(c.Request.Context(), cert)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "certificate creation failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *certificateHandler) All(c *gin.Context) {
	certs, err := h.certs.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list certificates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}

func (h *certificateHandler) AllSession(c *gin.Context) {
	forms, err := h.certs.AllSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list session certificates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": forms})
}

func (h *certificateHandler) Delete(c *gin.Context) {
	err := h.certs.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "certificate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "certificate deletion failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "certificate removed"})
}

func (h *certificateHandler) UploadExcel(c *gin.Context) {
	rows, ok := h.workbookRows(c)
	if !ok {
		return
	}

	results, err := h.certs.ImportWorkbook(c.Request.Context(), rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "certificate import failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *certificateHandler) MatchExcel(c *gin.Context) {
	rows, ok := h.workbookRows(c)
	if !ok {
		return
	}

	certs, err := h.certs.MatchWorkbook(c.Request.Context(), rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "certificate lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}

func (h *certificateHandler) GenerateOne(c *gin.Context) {
	cert, err := h.certs.GenerateSessionCertificate(c.Request.Context(), c.Param("participantID"))
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "participant not found"})
	case errors.Is(err, repo.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "certificate already generated"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "certificate generation failed"})
	default:
		c.JSON(http.StatusCreated, gin.H{"certificate": cert})
	}
}

func (h *certificateHandler) GenerateAll(c *gin.Context) {
	results, err := h.certs.GenerateAllSessionCertificates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "bulk certificate generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *certificateHandler) workbookRows(c *gin.Context) ([]spreadsheet.Row, bool) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "xlsx file is required"})
		return nil, false
	}
	defer file.Close()

	rows, err := spreadsheet.ReadRows(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read workbook"})
		return nil, false
	}
	return rows, true
}
