package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"todoboard/internal/middleware"
	todoHTTP "todoboard/internal/todo/delivery/http"
)

// setupTodoDomain initializes the todo domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase (wired in main, passed through Config)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup) error {
	mw := middleware.New(srv.l)

	h := todoHTTP.New(srv.l, srv.todoUC)

	// Registers /api/v1/todos
	todoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}
