package sync_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"todoboard/internal/sync"
	"todoboard/internal/todo"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// relistRecorder implements todo.UseCase counting Relist calls.
type relistRecorder struct {
	relists atomic.Int32
}

func (r *relistRecorder) Create(ctx context.Context, input todo.CreateInput) (todo.CreateOutput, error) {
	return todo.CreateOutput{}, nil
}

func (r *relistRecorder) List(ctx context.Context, input todo.ListInput) (todo.ListOutput, error) {
	return todo.ListOutput{}, nil
}

func (r *relistRecorder) Toggle(ctx context.Context, id string) (todo.ToggleOutput, error) {
	return todo.ToggleOutput{}, nil
}

func (r *relistRecorder) Edit(ctx context.Context, input todo.EditInput) (todo.EditOutput, error) {
	return todo.EditOutput{}, nil
}

func (r *relistRecorder) Delete(ctx context.Context, id string) error { return nil }

func (r *relistRecorder) Relist(ctx context.Context) error {
	r.relists.Add(1)
	return nil
}

func newWebhookRouter(uc todo.UseCase, hub *sync.Hub, cfg sync.SecurityConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := sync.NewWebhookHandler(uc, hub, sync.NewSecurityValidator(cfg), &mockLogger{})
	r := gin.New()
	r.POST("/webhook/store", h.HandleStoreWebhook)
	return r
}

func TestHandleStoreWebhook(t *testing.T) {
	payload := `{"activityType":"record.updated","record":{"id":"rec-7"}}`

	t.Run("triggers relist and broadcast", func(t *testing.T) {
		uc := &relistRecorder{}
		hub := sync.NewHub()
		hub.Start()
		sub := hub.Subscribe()

		r := newWebhookRouter(uc, hub, sync.SecurityConfig{RateLimitPerMin: 600})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook/store", strings.NewReader(payload))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected immediate 200 ack, got %d", w.Code)
		}

		select {
		case notice := <-sub.C:
			if notice.Event != "list_changed" || notice.RecordID != "rec-7" {
				t.Errorf("unexpected notice: %+v", notice)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("no broadcast after webhook")
		}

		if uc.relists.Load() == 0 {
			t.Error("expected a relist")
		}
	})

	t.Run("bad signature rejected", func(t *testing.T) {
		uc := &relistRecorder{}
		hub := sync.NewHub()
		hub.Start()

		r := newWebhookRouter(uc, hub, sync.SecurityConfig{Secret: "s3cret", RateLimitPerMin: 600})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook/store", strings.NewReader(payload))
		req.Header.Set(sync.SignatureHeader, "sha256=deadbeef")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
		if uc.relists.Load() != 0 {
			t.Error("relist must not run for rejected payloads")
		}
	})

	t.Run("malformed payload rejected", func(t *testing.T) {
		uc := &relistRecorder{}
		hub := sync.NewHub()
		hub.Start()

		r := newWebhookRouter(uc, hub, sync.SecurityConfig{RateLimitPerMin: 600})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook/store", strings.NewReader("{not json"))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
