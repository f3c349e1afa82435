package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.POST("/query", handler.Query)
		api.POST("/reset", handler.Reset)
		api.GET("/health", handler.Health)
	}
}
