package repository

import (
	"context"
	"errors"
)

// ErrDuplicate is returned when a save violates the unique name index.
var ErrDuplicate = errors.New("duplicate record")

// Repository is the persistence port the service pipeline talks to, one
// instance per entity type. Find methods return (nil, nil) when nothing
// matches; absence is an outcome, not an error.
type Repository[E any] interface {
	// Find a record by its identifier.
	FindByID(ctx context.Context, id string) (*E, error)
	// Find the first record carrying the given name.
	FindFirstByName(ctx context.Context, name string) (*E, error)
	// Fetch one page of records plus the total live record count.
	FindAll(ctx context.Context, page, size int) ([]E, int64, error)
	// Insert or replace a record keyed by its identifier.
	Save(ctx context.Context, entity *E) error
	// Remove a record by its identifier.
	DeleteByID(ctx context.Context, id string) error
	// Remove every record of the entity type.
	DeleteAll(ctx context.Context) error
	// Count live records.
	Count(ctx context.Context) (int64, error)
	// Initialize indexes.
	EnsureIndexes(ctx context.Context) error
}
