package sync

import (
	"todoboard/internal/todo"
	pkgLog "todoboard/pkg/log"
)

// WebhookHandler receives change notifications from the remote store,
// triggers a relist and fans the change out to subscribed clients.
type WebhookHandler struct {
	uc        todo.UseCase
	hub       *Hub
	validator *SecurityValidator
	l         pkgLog.Logger
}

func NewWebhookHandler(uc todo.UseCase, hub *Hub, validator *SecurityValidator, l pkgLog.Logger) *WebhookHandler {
	return &WebhookHandler{
		uc:        uc,
		hub:       hub,
		validator: validator,
		l:         l,
	}
}
