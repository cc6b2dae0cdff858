package routes

import (
	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/handlers"
	"uniadvisor_backend/internal/logger"
	"uniadvisor_backend/internal/middleware"

	_ "uniadvisor_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Пути в корне, как их вызывает фронтенд; визовый справочник под /api/visa.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	provider catalog.Provider,
) {
	public := &ginRouter.RouterGroup

	// Снимок каталога берётся один раз на запрос, только там, где он нужен
	withCatalog := ginRouter.Group("")
	withCatalog.Use(middleware.CatalogMiddleware(provider))

	appHandlers.CatalogHandler.RegisterRoutes(public, withCatalog)
	appHandlers.RecommendationHandler.RegisterRoutes(public, withCatalog)
	appHandlers.FinanceHandler.RegisterRoutes(public, withCatalog)
	appHandlers.ScholarshipHandler.RegisterRoutes(withCatalog)
	appHandlers.AdvisorHandler.RegisterRoutes(public)
	appHandlers.VisaHandler.RegisterRoutes(public)

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Debug("HTTP routes registered", "routes", len(ginRouter.Routes()))
}
