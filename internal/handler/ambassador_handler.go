package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"
	"github.com/isrcorgin/ISRC-Backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AmbassadorHandler serves one roster; the Indian and international route
// groups each wrap their own service instance.
type AmbassadorHandler interface {
	Add(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Apply(c *gin.Context)
	Applications(c *gin.Context)
}

type ambassadorHandler struct {
	ambassadors service.AmbassadorService
}

func NewAmbassadorHandler(ambassadors service.AmbassadorService) AmbassadorHandler {
	return &ambassadorHandler{ambassadors: ambassadors}
}

func (h *ambassadorHandler) Add(c *gin.Context) {
	form := service.AmbassadorForm{
		Name:         c.PostForm("name"),
		LinkedInLink: c.PostForm("linkedInLink"),
		Place:        c.PostForm("place"),
	}
	if form.Name == "" || form.LinkedInLink == "" || form.Place == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, linkedInLink and place are required"})
		return
	}
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	amb, err := h.ambassadors.Add(c.Request.Context(), form, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add ambassador"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ambassador": amb})
}

func (h *ambassadorHandler) List(c *gin.Context) {
	ambs, err := h.ambassadors.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list ambassadors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ambassadors": ambs})
}

func (h *ambassadorHandler) Update(c *gin.Context) {
	form := service.AmbassadorForm{
		Name:         c.PostForm("name"),
		LinkedInLink: c.PostForm("linkedInLink"),
		Place:        c.PostForm("place"),
	}

	var portrait multipart.File
	if file, _, err := c.Request.FormFile("image"); err == nil {
		portrait = file
		defer file.Close()
	}

	err := h.ambassadors.Update(c.Request.Context(), c.Param("id"), form, readerOrNil(portrait))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ambassador not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update ambassador"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ambassador updated"})
}

func (h *ambassadorHandler) Delete(c *gin.Context) {
	err := h.ambassadors.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ambassador not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete ambassador"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ambassador removed"})
}

func (h *ambassadorHandler) Apply(c *gin.Context) {
	var app model.AmbassadorApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application payload"})
		return
	}
	if app.Name == "" || app.Email == "" || app.Phone == "" || app.State == "" ||
		app.City == "" || app.College == "" || app.YearOfStudy == "" || app.DegreeProgram == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all application fields are required"})
		return
	}

	id, err := h.ambassadors.Apply(c.Request.Context(), app)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit application"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ambassadorHandler) Applications(c *gin.Context) {
	apps, err := h.ambassadors.Applications(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// readerOrNil keeps a typed-nil multipart.File from reaching the service as
// a non-nil io.Reader.
func readerOrNil(f multipart.File) io.Reader {
	if f == nil {
		return nil
	}
	return f
}
