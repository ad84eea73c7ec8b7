package http

import (
	"github.com/gin-gonic/gin"

	"todoboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	todos := rg.Group("/todos")
	{
		todos.POST("", mw.RequestLog(), h.Create)
		todos.GET("", mw.RequestLog(), h.List)
		todos.POST("/:id/toggle", mw.RequestLog(), h.Toggle)
		todos.PUT("/:id", mw.RequestLog(), h.Edit)
		todos.DELETE("/:id", mw.RequestLog(), h.Delete)
	}
}
