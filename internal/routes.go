package internal

import (
	"net/http"
	"urlchecker/internal/controllers"
	"urlchecker/internal/providers"
	"urlchecker/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/scan", http.HandlerFunc(apiController.Scan))
	routers.Post("/url", http.HandlerFunc(apiController.SetURL))
	routers.Get("/state", http.HandlerFunc(apiController.State))
	routers.Get("/history", http.HandlerFunc(apiController.History))
	routers.Post("/history/select", http.HandlerFunc(apiController.SelectHistory))
	routers.Post("/history/clear", http.HandlerFunc(apiController.ClearHistory))
	routers.Post("/copy", http.HandlerFunc(apiController.CopyResult))
	routers.Get("/clipboard", http.HandlerFunc(apiController.Clipboard))
	return routers
}
