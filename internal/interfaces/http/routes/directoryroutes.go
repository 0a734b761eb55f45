package routes

import (
	"github.com/gin-gonic/gin"

	"opsight/internal/interfaces/http/handlers"
)

// DirectoryRouteConfig holds dependencies for the directory routes.
type DirectoryRouteConfig struct {
	DirectoryHandler *handlers.DirectoryHandler
}

// SetupDirectoryRoutes configures the read-only user and group listings.
func SetupDirectoryRoutes(rg *gin.RouterGroup, cfg *DirectoryRouteConfig) {
	rg.GET("/users", cfg.DirectoryHandler.ListUsers)
	rg.GET("/groups", cfg.DirectoryHandler.ListGroups)
}
