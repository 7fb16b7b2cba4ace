package routes

import (
	"neads_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.User.RegisterRoutes(api)
		appHandlers.Creator.RegisterRoutes(api)
		appHandlers.Search.RegisterRoutes(api)
		appHandlers.Map.RegisterRoutes(api)
		appHandlers.Media.RegisterRoutes(api)
		appHandlers.Rating.RegisterRoutes(api)
		appHandlers.Favorite.RegisterRoutes(api)
		appHandlers.Taxonomy.RegisterRoutes(api)
		appHandlers.File.RegisterRoutes(api)
	}
}
