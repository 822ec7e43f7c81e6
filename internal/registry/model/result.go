package model

import "fmt"

// Outcome tags the result of a service operation. Expected failures
// (not found, conflict, bad input) travel as outcomes, not errors.
type Outcome string

const (
	OutcomeSuccess    Outcome = "SUCCESS"
	OutcomeNotFound   Outcome = "NOT_FOUND"
	OutcomeBadRequest Outcome = "BAD_REQUEST"
	OutcomeConflict   Outcome = "CONFLICT"
	OutcomeError      Outcome = "ERROR"
	OutcomeUndefined  Outcome = "UNDEFINED"
)

// Result wraps the outcome of a single-entity operation.
type Result[E any] struct {
	Outcome Outcome
	Message string
	Key     MessageKey
	Payload *E
}

// PaginationInfo describes a page window over a larger result set.
type PaginationInfo struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int64 `json:"currentPage"`
}

// NewPaginationInfo derives the page metadata for the given totals.
func NewPaginationInfo(totalItems int64, page, size int) PaginationInfo {
	var totalPages int64
	if size > 0 {
		totalPages = (totalItems + int64(size) - 1) / int64(size)
	}
	return PaginationInfo{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: int64(page),
	}
}

// ListResult wraps the outcome of a collection operation.
type ListResult[E any] struct {
	Outcome    Outcome
	Message    string
	Key        MessageKey
	Items      []E
	Pagination PaginationInfo
}

func Success[E any](payload *E) *Result[E] {
	return &Result[E]{Outcome: OutcomeSuccess, Message: MsgTransactionConcluded, Payload: payload}
}

func NotFound[E any](key MessageKey, format string, args ...any) *Result[E] {
	return &Result[E]{Outcome: OutcomeNotFound, Message: fmt.Sprintf(format, args...), Key: key}
}

func BadRequest[E any](key MessageKey, message string) *Result[E] {
	return &Result[E]{Outcome: OutcomeBadRequest, Message: message, Key: key}
}

func Conflict[E any](key MessageKey, format string, args ...any) *Result[E] {
	return &Result[E]{Outcome: OutcomeConflict, Message: fmt.Sprintf(format, args...), Key: key}
}

func Failure[E any](message string) *Result[E] {
	return &Result[E]{Outcome: OutcomeError, Message: message, Key: KeyInternalServerError}
}

func SuccessList[E any](items []E, pagination PaginationInfo) *ListResult[E] {
	return &ListResult[E]{
		Outcome:    OutcomeSuccess,
		Message:    MsgTransactionConcluded,
		Items:      items,
		Pagination: pagination,
	}
}

func NotFoundList[E any](key MessageKey, format string, args ...any) *ListResult[E] {
	return &ListResult[E]{Outcome: OutcomeNotFound, Message: fmt.Sprintf(format, args...), Key: key}
}

func BadRequestList[E any](key MessageKey, message string) *ListResult[E] {
	return &ListResult[E]{Outcome: OutcomeBadRequest, Message: message, Key: key}
}

func FailureList[E any](message string) *ListResult[E] {
	return &ListResult[E]{Outcome: OutcomeError, Message: message, Key: KeyInternalServerError}
}
