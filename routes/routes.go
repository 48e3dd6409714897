package routes

import (
	"twingrid/grid"
	"twingrid/ratelim"
	"twingrid/settings"

	"github.com/julienschmidt/httprouter"
)

func AddGridRoutes(router *httprouter.Router) {
	router.GET("/api/grid/:locationid", ratelim.RateLimit(grid.GetGrid))
	router.GET("/api/spans/:locationid", ratelim.RateLimit(grid.GetSpans))
}

func AddSettingsRoutes(router *httprouter.Router) {
	router.GET("/api/settings/:locationid", ratelim.RateLimit(settings.GetSettings))
	router.PUT("/api/settings/:locationid", settings.UpdateSettings)
	router.GET("/api/integrations/:locationid", ratelim.RateLimit(settings.GetIntegrationConfig))
	router.PUT("/api/integrations/:locationid", settings.UpdateIntegrationConfig)
}
