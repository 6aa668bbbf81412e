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

type TeamHandler interface {
	Profile(c *gin.Context)
	RegisterTeam(c *gin.Context)
	CheckTeamName(c *gin.Context)
	UploadProfileImage(c *gin.Context)

	// Admin surface.
	AllUsers(c *gin.Context)
	UserProfile(c *gin.Context)
	UpdateUser(c *gin.Context)
}

type teamHandler struct {
	teams service.TeamService
}

func NewTeamHandler(teams service.TeamService) TeamHandler {
	return &teamHandler{teams: teams}
}

func (h *teamHandler) Profile(c *gin.Context) {
	h.respondProfile(c, middleware.UID(c))
}

func (h *teamHandler) UserProfile(c *gin.Context) {
	h.respondProfile(c, c.Param("uid"))
}

func (h *teamHandler) respondProfile(c *gin.Context, uid string) {
	user, err := h.teams.Profile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *teamHandler) RegisterTeam(c *gin.Context) {
	var req struct {
		FormDetails service.TeamForm   `json:"formDetails" binding:"required"`
		TeamMembers []model.TeamMember `json:"teamMembers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "formDetails and teamMembers are required"})
		return
	}

	err := h.teams.RegisterTeam(c.Request.Context(), middleware.UID(c), req.FormDetails, req.TeamMembers)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "team registration failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team registered"})
}

func (h *teamHandler) CheckTeamName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	exists, err := h.teams.TeamNameExists(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "team name check failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (h *teamHandler) UploadProfileImage(c *gin.Context) {
	memberName := c.PostForm("memberName")
	if memberName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "memberName is required"})
		return
	}
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	url, err := h.teams.UploadMemberImage(c.Request.Context(), middleware.UID(c), memberName, file)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

func (h *teamHandler) AllUsers(c *gin.Context) {
	users, err := h.teams.AllUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *teamHandler) UpdateUser(c *gin.Context) {
	var req struct {
		Mentor  model.Mentor       `json:"mentor"`
		Members []model.TeamMember `json:"members" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "members are required"})
		return
	}

	err := h.teams.UpdateRoster(c.Request.Context(), c.Param("uid"), req.Mentor, req.Members)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}
