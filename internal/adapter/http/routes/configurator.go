package routes

import (
	"carport_configurator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing  = "/ping"
	PathLines = "/lines/:" + handlers.ParamLine
	PathAdmin = "/admin"

	pathCatalogKind    = "/catalog/:" + handlers.ParamKind
	pathConfigurations = "/configurations"
	pathID             = "/:" + handlers.ParamID
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

// addConfiguratorRoutes registers the public wizard endpoints.
func addConfiguratorRoutes(rg *gin.RouterGroup, configurationHandler *handlers.ConfigurationHandler, catalogHandler *handlers.CatalogHandler) {
	lines := rg.Group(PathLines)
	{
		lines.GET(pathCatalogKind, catalogHandler.ListActive)
		lines.POST(pathConfigurations+"/quote", configurationHandler.Quote)
		lines.POST(pathConfigurations, configurationHandler.Submit)
	}
}

// addAdminRoutes registers the back-office endpoints. Authentication sits in
// front of the service.
func addAdminRoutes(rg *gin.RouterGroup, configurationHandler *handlers.ConfigurationHandler, catalogHandler *handlers.CatalogHandler) {
	lines := rg.Group(PathAdmin + PathLines)

	configurations := lines.Group(pathConfigurations)
	{
		configurations.GET("", configurationHandler.List)
		configurations.GET(pathID, configurationHandler.Get)
		configurations.DELETE(pathID, configurationHandler.Delete)
		configurations.PATCH(pathID+"/status", configurationHandler.UpdateStatus)
	}

	catalog := lines.Group(pathCatalogKind)
	{
		catalog.GET("", catalogHandler.List)
		catalog.GET(pathID, catalogHandler.Get)
		catalog.POST("", catalogHandler.Create)
		catalog.PUT(pathID, catalogHandler.Update)
		catalog.DELETE(pathID, catalogHandler.Delete)
	}
}
