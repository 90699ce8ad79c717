package routes

import (
	"net/http"

	_ "carport_configurator/docs" // generated by swag init
	"carport_configurator/internal/adapter/http/handlers"
	"carport_configurator/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run(a *app.Application) error {
	router := NewRouter(a)

	zap.L().Info("[http] listening", zap.String("addr", a.Config().Addr()))
	return router.Run(a.Config().Addr())
}

// NewRouter builds the engine with every route of both product lines.
func NewRouter(a *app.Application) *gin.Engine {
	if mode := a.Config().HTTP.GinMode; mode != "" {
		gin.SetMode(mode)
	}
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, a)
	return router
}

func getRoutes(router *gin.Engine, a *app.Application) {
	configurationHandler := handlers.NewConfigurationHandler(a.ConfigurationUseCase())
	catalogHandler := handlers.NewCatalogHandler(a.CatalogUseCase())

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConfiguratorRoutes(v1, configurationHandler, catalogHandler)
	addAdminRoutes(v1, configurationHandler, catalogHandler)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.L().Error("[http] recovered from panic",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
