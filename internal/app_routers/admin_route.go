package approuters

import (
	"github.com/isrcorgin/ISRC-Backend/internal/configuration"
	"github.com/isrcorgin/ISRC-Backend/internal/middleware"
	"github.com/isrcorgin/ISRC-Backend/internal/model"

	"github.com/gin-gonic/gin"
)

func AdminRouters(router *gin.Engine, container *configuration.Container) {
	rl := container.Config.RateLimit
	authLimiter := middleware.RateLimit(rl.AuthLimit, rl.Window)

	admin := router.Group("/api/admin")
	{
		admin.POST("/register", authLimiter, container.AdminAuthHandler.Register)
		admin.POST("/login", authLimiter, container.AdminAuthHandler.Login)
	}

	protected := admin.Group("")
	protected.Use(middleware.RequireToken(container.Tokens), middleware.RequireRole(model.NamespaceAdmin))
	{
		protected.POST("/add-campus-ambassador", container.CAHandler.Add)
		protected.GET("/all-campus-ambassadors", container.CAHandler.List)
		protected.PUT("/update-campus-ambassador/:id", container.CAHandler.Update)
		protected.DELETE("/delete-campus-ambassador/:id", container.CAHandler.Delete)
		protected.GET("/campus-ambassador-applications", container.CAHandler.Applications)

		protected.POST("/add-international-campus-ambassador", container.IntlCAHandler.Add)
		protected.GET("/all-international-campus-ambassadors", container.IntlCAHandler.List)

		protected.GET("/all-users", container.TeamHandler.AllUsers)
		protected.GET("/user-profile/:uid", container.TeamHandler.UserProfile)
		protected.PUT("/update-user/:uid", container.TeamHandler.UpdateUser)
		protected.GET("/attendance/mark/:uid", container.MarkingHandler.MarkAttendance)

		protected.POST("/generate-certificate", container.CertHandler.Generate)
		protected.POST("/generate-workshop-certificate", container.CertHandler.Generate)
		protected.GET("/all-certificates", container.CertHandler.All)
		protected.GET("/all-sessioncertificates", container.CertHandler.AllSession)
		protected.DELETE("/remove-certificate/:id", container.CertHandler.Delete)

		protected.POST("/upload-excel", container.CertHandler.UploadExcel)
		protected.POST("/get-all-certificate-excel", container.CertHandler.MatchExcel)
	}
}
