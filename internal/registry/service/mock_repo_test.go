package service

import (
	"context"

	"registry7/internal/registry/model"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of repository.Repository[E].
type MockRepository[E any] struct {
	mock.Mock
}

func (m *MockRepository[E]) FindByID(ctx context.Context, id string) (*E, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockRepository[E]) FindFirstByName(ctx context.Context, name string) (*E, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockRepository[E]) FindAll(ctx context.Context, page, size int) ([]E, int64, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]E), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository[E]) Save(ctx context.Context, entity *E) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[E]) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository[E]) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository[E]) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository[E]) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newVendorPipeline(repo *MockRepository[model.Vendor]) *Pipeline[model.Vendor, *model.Vendor] {
	return NewPipeline[model.Vendor, *model.Vendor](repo, model.VendorKeys, nil)
}
