package approuters

import (
	"github.com/isrcorgin/ISRC-Backend/internal/configuration"
	"github.com/isrcorgin/ISRC-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func MarkingRouters(router *gin.Engine, container *configuration.Container) {
	marking := router.Group("/api/marking")
	marking.Use(middleware.RequireToken(container.Tokens))
	{
		marking.POST("/marks", container.MarkingHandler.SubmitMarks)
		marking.GET("/result", container.MarkingHandler.Result)
	}
}
