package http

import (
	"todoboard/internal/model"
	"todoboard/internal/todo"
)

// --- Request DTOs ---

type createReq struct {
	Title string `json:"title" binding:"required,max=255"`
	Memo  string `json:"memo"  binding:"max=10000"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() todo.CreateInput {
	return todo.CreateInput{
		Title: r.Title,
		Memo:  r.Memo,
	}
}

// ---

type listReq struct {
	Filter string `form:"filter"`
	Sort   string `form:"sort"`
	Query  string `form:"q"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() todo.ListInput {
	filter := todo.Filter(r.Filter)
	if filter == "" {
		filter = todo.FilterAll
	}
	sort := todo.Sort(r.Sort)
	if sort == "" {
		sort = todo.SortCreatedAsc
	}
	return todo.ListInput{
		Filter: filter,
		Sort:   sort,
		Query:  r.Query,
	}
}

// ---

type editReq struct {
	ID    string `json:"-"` // populated from URI param
	Title string `json:"title" binding:"required,max=255"`
	Memo  string `json:"memo"  binding:"max=10000"`
}

func (r editReq) validate() error { return nil }

func (r editReq) toInput() todo.EditInput {
	return todo.EditInput{
		ID:    r.ID,
		Title: r.Title,
		Memo:  r.Memo,
	}
}

// --- Response DTOs ---

type todoResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Memo      string `json:"memo"`
	Done      bool   `json:"done"`
	UpdatedAt *int64 `json:"updated_at"` // epoch ms, null when never updated
	CreatedAt int64  `json:"created_at"` // epoch ms, 0 when unknown
}

func newTodoResp(t model.Todo) todoResp {
	return todoResp{
		ID:        t.ID,
		Title:     t.Title,
		Memo:      t.Memo,
		Done:      t.Done,
		UpdatedAt: t.UpdatedAt,
		CreatedAt: t.CreatedAt,
	}
}

type createResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newCreateResp(out todo.CreateOutput) createResp {
	return createResp{Todo: newTodoResp(out.Todo)}
}

type listResp struct {
	Todos []todoResp `json:"todos"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out todo.ListOutput) listResp {
	todos := make([]todoResp, len(out.Todos))
	for i, t := range out.Todos {
		todos[i] = newTodoResp(t)
	}
	return listResp{
		Todos: todos,
		Total: out.Total,
	}
}

type toggleResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newToggleResp(out todo.ToggleOutput) toggleResp {
	return toggleResp{Todo: newTodoResp(out.Todo)}
}

type editResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newEditResp(out todo.EditOutput) editResp {
	return editResp{Todo: newTodoResp(out.Todo)}
}
