package handler

import (
	"errors"
	"net/http"

	"github.com/isrcorgin/ISRC-Backend/internal/identity"
	"github.com/isrcorgin/ISRC-Backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves one credential namespace; the participant and admin
// route groups each get their own instance.
type AuthHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	ForgotPassword(c *gin.Context)
	ResendVerification(c *gin.Context)
	CheckVerification(c *gin.Context)
	ConfirmEmail(c *gin.Context)
	ResetPassword(c *gin.Context)
}

type authHandler struct {
	auth      service.AuthService
	namespace string
}

func NewAuthHandler(auth service.AuthService, namespace string) AuthHandler {
	return &authHandler{auth: auth, namespace: namespace}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *authHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	session, err := h.auth.Register(c.Request.Context(), h.namespace, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailInUse) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":         session.Token,
		"uid":           session.UID,
		"emailVerified": session.EmailVerified,
	})
}

func (h *authHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	session, err := h.auth.Login(c.Request.Context(), h.namespace, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":         session.Token,
		"uid":           session.UID,
		"emailVerified": session.EmailVerified,
	})
}

func (h *authHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), h.namespace, req.Email); err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no account for that email"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send reset email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password reset email sent"})
}

func (h *authHandler) ResendVerification(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	err := h.auth.ResendVerification(c.Request.Context(), h.namespace, req.Email)
	switch {
	case errors.Is(err, identity.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no account for that email"})
	case errors.Is(err, identity.ErrAlreadyVerified):
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already verified"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send verification email"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "verification email sent"})
	}
}

func (h *authHandler) CheckVerification(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	verified, err := h.auth.CheckVerification(c.Request.Context(), h.namespace, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification check failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"emailVerified": verified})
}

func (h *authHandler) ConfirmEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.auth.ConfirmEmail(c.Request.Context(), token); err != nil {
		if errors.Is(err, identity.ErrTokenInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "email confirmation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email verified"})
}

func (h *authHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token and newPassword are required"})
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, identity.ErrTokenInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password reset failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
