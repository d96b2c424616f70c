// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trek/internal/http/handlers"
	"trek/internal/http/middleware"
	"trek/internal/planner"
	"trek/internal/suggest"
)

func NewRouter(plannerService *planner.Service, suggestService *suggest.Service) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	planHandler := handlers.NewPlanHandler(plannerService)
	r.POST("/plan", planHandler.Plan)

	suggestHandler := handlers.NewSuggestHandler(suggestService)
	r.POST("/suggest_destinations", suggestHandler.Destinations)
	r.POST("/suggest_districts", suggestHandler.Districts)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "AI Travel Planner API is running!"})
	})

	return r
}
