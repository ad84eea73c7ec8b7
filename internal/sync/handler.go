package sync

import (
	"context"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"todoboard/internal/model"
	pkgResponse "todoboard/pkg/response"
)

// HandleStoreWebhook processes change notifications from the remote store.
// Any change triggers the same full relist; the handler acknowledges
// immediately and does the work in the background so the store is never
// blocked on us.
func (h *WebhookHandler) HandleStoreWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	if err := h.validator.ValidateSignature(body, c.GetHeader(SignatureHeader)); err != nil {
		h.l.Warnf(ctx, "webhook: signature rejected: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	if err := h.validator.CheckRateLimit(c.ClientIP()); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	payload, err := parsePayload(body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to parse payload: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	event := payload.toEvent()
	h.l.Infof(ctx, "webhook: received %s for record %s", event.Type, event.RecordID)

	// Process in background to avoid blocking the store
	go func(ev model.ChangeEvent) {
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		h.relistWithRetry(bgCtx)
		h.hub.Broadcast(ChangeNotice{Event: "list_changed", RecordID: ev.RecordID})
	}(event)

	// Acknowledge immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// relistWithRetry re-fetches the full record set with exponential backoff.
// A racing user-initiated relist is benign: both converge on the
// authoritative list.
func (h *WebhookHandler) relistWithRetry(ctx context.Context) {
	maxRetries := 3
	backoff := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := h.uc.Relist(ctx); err != nil {
			h.l.Warnf(ctx, "webhook: relist failed (retry %d/%d): %v", i+1, maxRetries, err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff *= 2
			continue
		}
		return
	}

	h.l.Errorf(ctx, "webhook: relist failed after %d retries; snapshot is stale until the next list", maxRetries)
}
