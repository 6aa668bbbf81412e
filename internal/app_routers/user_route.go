package approuters

import (
	"github.com/isrcorgin/ISRC-Backend/internal/configuration"
	"github.com/isrcorgin/ISRC-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func UserRouters(router *gin.Engine, container *configuration.Container) {
	rl := container.Config.RateLimit
	authLimiter := middleware.RateLimit(rl.AuthLimit, rl.Window)
	paymentLimiter := middleware.RateLimit(rl.PaymentLimit, rl.Window)
	token := middleware.RequireToken(container.Tokens)

	api := router.Group("/api")
	{
		api.POST("/register", authLimiter, container.UserAuthHandler.Register)
		api.POST("/login", authLimiter, container.UserAuthHandler.Login)
		api.POST("/forgot-password", authLimiter, container.UserAuthHandler.ForgotPassword)
		api.POST("/resend-verification", container.UserAuthHandler.ResendVerification)
		api.POST("/check-verification", container.UserAuthHandler.CheckVerification)
		api.GET("/confirm-email", container.UserAuthHandler.ConfirmEmail)
		api.POST("/reset-password", container.UserAuthHandler.ResetPassword)

		api.GET("/user-profile", token, container.TeamHandler.Profile)
		api.POST("/register-team", token, container.TeamHandler.RegisterTeam)
		api.GET("/check-team-name", token, container.TeamHandler.CheckTeamName)
		api.POST("/upload-profile-image", token, container.TeamHandler.UploadProfileImage)

		api.POST("/payment", token, paymentLimiter, container.PaymentHandler.CreateOrder)
		api.POST("/verify", token, paymentLimiter, container.PaymentHandler.Confirm)

		api.POST("/verify-certificate", container.CertHandler.Verify)
		api.POST("/campus-ambassador", container.CAHandler.Apply)
	}
}
