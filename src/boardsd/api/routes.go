package api

import (
	"github.com/bitswalk/boardlist/src/boardsd/api/common"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes configures all API routes on the given router
func (a *API) RegisterRoutes(router *gin.Engine) {
	// Root endpoint - API discovery
	router.GET("/", a.Base.HandleRoot)

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/health", a.Base.HandleHealth)
		v1.GET("/version", a.Base.HandleVersion)

		// Boards list routes build a list per request
		boardsList := v1.Group("/boards-list")
		boardsList.Use(a.rateLimit())
		{
			boardsList.POST("", a.BoardsList.HandleBoardsList)
			boardsList.POST("/ports", a.BoardsList.HandlePorts)
		}
	}

	router.NoRoute(common.NotFound)
}
