package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"

	"registry7/internal/registry/handler"
	"registry7/internal/registry/model"
	"registry7/internal/registry/router"
	"registry7/internal/registry/service"

	"github.com/labstack/echo/v4"
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

type testRepos struct {
	systems    *MockRepository[model.System]
	vendors    *MockRepository[model.Vendor]
	categories *MockRepository[model.AssetCategory]
}

// SetupServer builds the full Echo stack over mocked repositories.
func SetupServer() (*echo.Echo, *testRepos) {
	repos := &testRepos{
		systems:    new(MockRepository[model.System]),
		vendors:    new(MockRepository[model.Vendor]),
		categories: new(MockRepository[model.AssetCategory]),
	}

	svc := service.NewService(repos.systems, repos.vendors, repos.categories, nil)
	h := handler.NewRegistryHandler(svc)

	e := echo.New()
	router.RegisterRoutes(e, h, nil)
	return e, repos
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(rec *httptest.ResponseRecorder) model.ErrorResponse {
	var body model.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}
