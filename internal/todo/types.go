package todo

import "todoboard/internal/model"

// Filter selects which todos a projection keeps.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Sort selects the projection ordering.
type Sort string

const (
	SortCreatedAsc  Sort = "created_asc"
	SortCreatedDesc Sort = "created_desc"
	SortTitleAsc    Sort = "title_asc"
	SortTitleDesc   Sort = "title_desc"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title string
	Memo  string
}

type ListInput struct {
	Filter Filter
	Sort   Sort
	Query  string
}

type EditInput struct {
	ID    string
	Title string
	Memo  string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Todo model.Todo
}

type ListOutput struct {
	Todos []model.Todo
	Total int // count before filter/search, i.e. size of the full set
}

type ToggleOutput struct {
	Todo model.Todo
}

type EditOutput struct {
	Todo model.Todo
}
