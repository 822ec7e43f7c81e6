package model

import "strings"

// ListQuery carries the query parameters of the collection GET endpoints.
// When Name is set the request is a lookup by name; otherwise it is a
// paginated list.
type ListQuery struct {
	Name string `query:"name" validate:"omitempty,max=255"`
	Page int    `query:"page" validate:"min=0"`
	Size int    `query:"size" validate:"min=0,max=100"`
}

func (q *ListQuery) Validate() error {
	q.Name = strings.TrimSpace(q.Name)
	if q.Size == 0 {
		q.Size = DefaultSize
	}

	if err := GetValidator().Struct(q); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// ByName reports whether the query is a lookup by name.
func (q *ListQuery) ByName() bool { return q.Name != "" }
