package http

import (
	"github.com/gin-gonic/gin"

	"todoboard/internal/todo"
	"todoboard/pkg/log"
)

// Handler is the public interface for the todo HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Toggle(c *gin.Context)
	Edit(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc todo.UseCase
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
