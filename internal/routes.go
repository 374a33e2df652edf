package internal

import (
	"drinkdays/internal/controllers"
	"drinkdays/internal/providers"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/records", http.HandlerFunc(apiController.ListRecords))
	routers.Post("/records", http.HandlerFunc(apiController.SaveRecord))
	routers.Get("/record", http.HandlerFunc(apiController.GetRecord))
	routers.Get("/settings", http.HandlerFunc(apiController.GetSettings))
	routers.Post("/settings", http.HandlerFunc(apiController.UpdateSettings))
	routers.Get("/stats/month", http.HandlerFunc(apiController.MonthStats))
	routers.Get("/stats/year", http.HandlerFunc(apiController.YearStats))
	routers.Get("/stats/week", http.HandlerFunc(apiController.WeekStats))
	routers.Get("/stats/streaks", http.HandlerFunc(apiController.Streaks))
	routers.Get("/stats/weekdays", http.HandlerFunc(apiController.Weekdays))
	routers.Get("/calendar", http.HandlerFunc(apiController.Calendar))
	return routers
}
