package sync

import "github.com/gin-gonic/gin"

// Handler defines the interface for the store change subscription surface.
type Handler interface {
	// HandleStoreWebhook processes incoming change notifications from the store.
	HandleStoreWebhook(c *gin.Context)

	// HandleWS upgrades to websocket and streams change notices.
	HandleWS(c *gin.Context)
}
