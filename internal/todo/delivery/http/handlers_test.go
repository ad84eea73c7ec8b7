package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"todoboard/internal/middleware"
	"todoboard/internal/model"
	"todoboard/internal/todo"
	todoHTTP "todoboard/internal/todo/delivery/http"
	"todoboard/pkg/response"
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

type mockUseCase struct {
	todos []model.Todo
	err   error
}

func (m *mockUseCase) Create(ctx context.Context, input todo.CreateInput) (todo.CreateOutput, error) {
	if m.err != nil {
		return todo.CreateOutput{}, m.err
	}
	return todo.CreateOutput{Todo: model.Todo{ID: "rec-1", Title: strings.TrimSpace(input.Title), Memo: input.Memo}}, nil
}

func (m *mockUseCase) List(ctx context.Context, input todo.ListInput) (todo.ListOutput, error) {
	if m.err != nil {
		return todo.ListOutput{}, m.err
	}
	return todo.ListOutput{Todos: todo.Project(m.todos, input), Total: len(m.todos)}, nil
}

func (m *mockUseCase) Toggle(ctx context.Context, id string) (todo.ToggleOutput, error) {
	if m.err != nil {
		return todo.ToggleOutput{}, m.err
	}
	return todo.ToggleOutput{Todo: model.Todo{ID: id, Done: true}}, nil
}

func (m *mockUseCase) Edit(ctx context.Context, input todo.EditInput) (todo.EditOutput, error) {
	if m.err != nil {
		return todo.EditOutput{}, m.err
	}
	return todo.EditOutput{Todo: model.Todo{ID: input.ID, Title: input.Title, Memo: input.Memo}}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, id string) error {
	return m.err
}

func (m *mockUseCase) Relist(ctx context.Context) error {
	return m.err
}

func newTestRouter(uc todo.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := &mockLogger{}
	mw := middleware.New(l)
	h := todoHTTP.New(l, uc)
	todoHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func TestCreateHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"title":"buy milk","memo":"two bottles"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.ErrorCode != 0 {
			t.Errorf("unexpected error code: %d", resp.ErrorCode)
		}
	})

	t.Run("missing title is a binding error", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", strings.NewReader(`{"memo":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("whitespace title maps to 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{err: todo.ErrEmptyTitle})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", strings.NewReader(`{"title":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestListHandler(t *testing.T) {
	set := []model.Todo{
		{ID: "r1", Title: "alpha", Done: false, CreatedAt: 1},
		{ID: "r2", Title: "beta", Done: true, CreatedAt: 2},
	}
	r := newTestRouter(&mockUseCase{todos: set})

	t.Run("projection params are honored", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/todos?filter=completed", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Data struct {
				Todos []struct {
					ID   string `json:"id"`
					Done bool   `json:"done"`
				} `json:"todos"`
				Total int `json:"total"`
			} `json:"data"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp.Data.Todos) != 1 || resp.Data.Todos[0].ID != "r2" {
			t.Errorf("unexpected projection: %+v", resp.Data.Todos)
		}
		if resp.Data.Total != 2 {
			t.Errorf("expected total 2, got %d", resp.Data.Total)
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{err: errors.New("store down")})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestToggleHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/todos/rec-1/toggle", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{err: todo.ErrTodoNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/todos/rec-404/toggle", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestEditHandler(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"title":"new title","memo":"new memo"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/todos/rec-1", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/todos/rec-1", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{err: todo.ErrTodoNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/todos/rec-404", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}
