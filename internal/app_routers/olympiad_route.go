package approuters

import (
	"github.com/isrcorgin/ISRC-Backend/internal/configuration"
	"github.com/isrcorgin/ISRC-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func OlympiadRouters(router *gin.Engine, container *configuration.Container) {
	rl := container.Config.RateLimit
	paymentLimiter := middleware.RateLimit(rl.PaymentLimit, rl.Window)

	gio := router.Group("/api/gio")
	gio.Use(middleware.RequireToken(container.Tokens))
	{
		gio.POST("/submit-gio-form", container.OlympiadHandler.SubmitForm)
		gio.GET("/check-registration-status", container.OlympiadHandler.RegistrationStatus)
		gio.GET("/get-gio-profile", container.OlympiadHandler.Profile)
		gio.GET("/get-all-entries", container.OlympiadHandler.AllEntries)
		gio.POST("/get-user-std", container.OlympiadHandler.Standard)

		gio.POST("/gio-payment/create", paymentLimiter, container.OlympiadHandler.CreateOrder)
		gio.POST("/gio-payment/confirm", paymentLimiter, container.OlympiadHandler.ConfirmPayment)

		gio.GET("/canattempt", container.OlympiadHandler.CanAttempt)
		gio.POST("/storeMarks", container.OlympiadHandler.StoreMarks)
		gio.POST("/storeMockMarks", container.OlympiadHandler.StoreMockMarks)
		gio.GET("/getMockRank", container.OlympiadHandler.MockRank)
	}
}
