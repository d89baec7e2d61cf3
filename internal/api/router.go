package api

import (
	"waste-route-service/internal/api/handlers"
	"waste-route-service/internal/services"

	"github.com/gin-gonic/gin"
)

// NewRouter wires HTTP handlers with their dependencies and returns the engine.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(dashboard *services.Dashboard, bins *services.BinService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestIDMiddleware(), loggingMiddleware())

	binHandler := &handlers.BinHandler{Bins: bins}
	routeHandler := &handlers.RouteHandler{Dashboard: dashboard}

	r.GET("/health", handlers.Health)
	binHandler.Register(&r.RouterGroup)
	routeHandler.Register(&r.RouterGroup)

	return r
}
