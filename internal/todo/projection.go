package todo

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"todoboard/internal/model"
)

// Project derives the display sequence from the full todo set: filter by
// completion state, narrow by search query, then order by the sort key.
// Pure function; the input slice is never mutated.
func Project(todos []model.Todo, input ListInput) []model.Todo {
	out := make([]model.Todo, 0, len(todos))

	query := strings.ToLower(strings.TrimSpace(input.Query))
	for _, t := range todos {
		if !matchFilter(t, input.Filter) {
			continue
		}
		if query != "" && !matchQuery(t, query) {
			continue
		}
		out = append(out, t)
	}

	sortTodos(out, input.Sort)
	return out
}

func matchFilter(t model.Todo, f Filter) bool {
	switch f {
	case FilterActive:
		return !t.Done
	case FilterCompleted:
		return t.Done
	default:
		return true
	}
}

// matchQuery matches the lowercased query against title or memo.
func matchQuery(t model.Todo, query string) bool {
	return strings.Contains(strings.ToLower(t.Title), query) ||
		strings.Contains(strings.ToLower(t.Memo), query)
}

// sortTodos orders in place. The sort is stable and ties on the primary key
// fall back to ID so repeated projections of the same set agree.
func sortTodos(todos []model.Todo, key Sort) {
	switch key {
	case SortTitleAsc, SortTitleDesc:
		// Collator buffers are not safe for concurrent use; build per call.
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(todos, func(i, j int) bool {
			cmp := c.CompareString(todos[i].Title, todos[j].Title)
			if cmp == 0 {
				return todos[i].ID < todos[j].ID
			}
			if key == SortTitleDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortCreatedDesc:
		sort.SliceStable(todos, func(i, j int) bool {
			if todos[i].CreatedAt == todos[j].CreatedAt {
				return todos[i].ID < todos[j].ID
			}
			return todos[i].CreatedAt > todos[j].CreatedAt
		})
	default: // SortCreatedAsc
		sort.SliceStable(todos, func(i, j int) bool {
			if todos[i].CreatedAt == todos[j].CreatedAt {
				return todos[i].ID < todos[j].ID
			}
			return todos[i].CreatedAt < todos[j].CreatedAt
		})
	}
}
