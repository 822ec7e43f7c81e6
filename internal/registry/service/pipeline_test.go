package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"registry7/internal/registry/model"
	"registry7/internal/registry/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func vendorRecord(id, name string, createdAt time.Time) *model.Vendor {
	return &model.Vendor{
		Metadata: model.Metadata{
			ID:          id,
			Name:        name,
			Description: "desc of " + name,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		},
	}
}

func TestCheckIdentifier(t *testing.T) {
	tests := []struct {
		name string
		id   string
		key  model.MessageKey
	}{
		{"blank identifier", "", model.KeyIdentifierMissing},
		{"whitespace identifier", "   ", model.KeyIdentifierMissing},
		{"non-uuid identifier", "not-a-uuid", model.KeyIdentifierNotUUID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository[model.Vendor])
			p := newVendorPipeline(mockRepo)

			res := p.GetByID(context.Background(), tt.id)
			assert.Equal(t, model.OutcomeBadRequest, res.Outcome)
			assert.Equal(t, tt.key, res.Key)
			mockRepo.AssertNotCalled(t, "FindByID")
		})
	}
}

func TestGetByID(t *testing.T) {
	t.Run("existing record returns success with payload", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		id := uuid.NewString()
		vendor := vendorRecord(id, "Vendor1", time.Now().UTC())
		mockRepo.On("FindByID", mock.Anything, id).Return(vendor, nil)

		res := p.GetByID(context.Background(), id)
		assert.Equal(t, model.OutcomeSuccess, res.Outcome)
		assert.Equal(t, model.MsgTransactionConcluded, res.Message)
		assert.Equal(t, vendor, res.Payload)
	})

	t.Run("valid but unassigned uuid returns not found", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		id := uuid.NewString()
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

		res := p.GetByID(context.Background(), id)
		assert.Equal(t, model.OutcomeNotFound, res.Outcome)
		assert.Equal(t, model.KeyVendorNotFoundID, res.Key)
		assert.Contains(t, res.Message, id)
	})

	t.Run("store failure returns error outcome with generic message", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		id := uuid.NewString()
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, errors.New("socket closed"))

		res := p.GetByID(context.Background(), id)
		assert.Equal(t, model.OutcomeError, res.Outcome)
		assert.Equal(t, model.KeyInternalServerError, res.Key)
		assert.NotContains(t, res.Message, "socket closed")
	})
}

func TestGetByName(t *testing.T) {
	t.Run("unknown name returns not found with name key", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		mockRepo.On("FindFirstByName", mock.Anything, "Ghost").Return(nil, nil)

		res := p.GetByName(context.Background(), "Ghost")
		assert.Equal(t, model.OutcomeNotFound, res.Outcome)
		assert.Equal(t, model.KeyVendorNotFoundName, res.Key)
		assert.Contains(t, res.Message, "Ghost")
	})

	t.Run("blank name returns bad request", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		res := p.GetByName(context.Background(), "  ")
		assert.Equal(t, model.OutcomeBadRequest, res.Outcome)
	})
}

func TestCreate(t *testing.T) {
	t.Run("mints identifier and stamps both timestamps", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		mockRepo.On("FindFirstByName", mock.Anything, "Vendor1").Return(nil, nil)
		mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(v *model.Vendor) bool {
			_, err := uuid.Parse(v.ID)
			return err == nil && !v.CreatedAt.IsZero() && v.CreatedAt.Equal(v.UpdatedAt)
		})).Return(nil)

		res := p.Create(context.Background(), vendorRecord("", "Vendor1", time.Time{}))
		assert.Equal(t, model.OutcomeSuccess, res.Outcome)
		assert.NotNil(t, res.Payload)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate name returns conflict without persisting", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		existing := vendorRecord(uuid.NewString(), "Vendor1", time.Now().UTC())
		mockRepo.On("FindFirstByName", mock.Anything, "Vendor1").Return(existing, nil)

		res := p.Create(context.Background(), vendorRecord("", "Vendor1", time.Time{}))
		assert.Equal(t, model.OutcomeConflict, res.Outcome)
		assert.Equal(t, model.KeyDuplicateVendor, res.Key)
		mockRepo.AssertNotCalled(t, "Save")
	})

	t.Run("unique index violation on save returns conflict", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		mockRepo.On("FindFirstByName", mock.Anything, "Vendor1").Return(nil, nil)
		mockRepo.On("Save", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

		res := p.Create(context.Background(), vendorRecord("", "Vendor1", time.Time{}))
		assert.Equal(t, model.OutcomeConflict, res.Outcome)
		assert.Equal(t, model.KeyDuplicateVendor, res.Key)
	})
}

func TestUpdate(t *testing.T) {
	applyName := func(name string) func(*model.Vendor) {
		return func(v *model.Vendor) {
			v.Name = name
			v.Description = "updated"
		}
	}

	t.Run("preserves identifier and creation timestamp and refreshes update timestamp", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		id := uuid.NewString()
		createdAt := time.Now().UTC().Add(-time.Hour)
		existing := vendorRecord(id, "Vendor1", createdAt)

		mockRepo.On("FindByID", mock.Anything, id).Return(existing, nil)
		mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(v *model.Vendor) bool {
			return v.ID == id && v.CreatedAt.Equal(createdAt) && v.UpdatedAt.After(createdAt)
		})).Return(nil)

		res := p.Update(context.Background(), id, "Vendor1", applyName("Vendor1"))
		assert.Equal(t, model.OutcomeSuccess, res.Outcome)
		mockRepo.AssertExpectations(t)
		// No-op rename skips the uniqueness lookup.
		mockRepo.AssertNotCalled(t, "FindFirstByName")
	})

	t.Run("rename to a name owned by another record returns conflict", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		id := uuid.NewString()
		existing := vendorRecord(id, "Vendor1", time.Now().UTC())
		other := vendorRecord(uuid.NewString(), "Vendor2", time.Now().UTC())

		mockRepo.On("FindByID", mock.Anything, id).Return(existing, nil)
		mockRepo.On("FindFirstByName", mock.Anything, "Vendor2").Return(other, nil)

		res := p.Update(context.Background(), id, "Vendor2", applyName("Vendor2"))
		assert.Equal(t, model.OutcomeConflict, res.Outcome)
		assert.Equal(t, model.KeyDuplicateVendor, res.Key)
		mockRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rename when lookup returns the record itself proceeds", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		id := uuid.NewString()
		existing := vendorRecord(id, "Vendor1", time.Now().UTC())
		same := vendorRecord(id, "vendor one", time.Now().UTC())

		mockRepo.On("FindByID", mock.Anything, id).Return(existing, nil)
		mockRepo.On("FindFirstByName", mock.Anything, "vendor one").Return(same, nil)
		mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		res := p.Update(context.Background(), id, "vendor one", applyName("vendor one"))
		assert.Equal(t, model.OutcomeSuccess, res.Outcome)
	})

	t.Run("unknown identifier returns not found", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		id := uuid.NewString()
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

		res := p.Update(context.Background(), id, "Vendor1", applyName("Vendor1"))
		assert.Equal(t, model.OutcomeNotFound, res.Outcome)
		assert.Equal(t, model.KeyVendorNotFoundID, res.Key)
	})
}

func TestList(t *testing.T) {
	t.Run("size one over two records pages correctly", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		v1 := vendorRecord(uuid.NewString(), "Vendor1", time.Now().UTC())
		v2 := vendorRecord(uuid.NewString(), "Vendor2", time.Now().UTC())

		mockRepo.On("FindAll", mock.Anything, 0, 1).Return([]model.Vendor{*v1}, int64(2), nil)
		mockRepo.On("FindAll", mock.Anything, 1, 1).Return([]model.Vendor{*v2}, int64(2), nil)

		page0 := p.List(context.Background(), 0, 1)
		assert.Equal(t, model.OutcomeSuccess, page0.Outcome)
		assert.Len(t, page0.Items, 1)
		assert.Equal(t, int64(2), page0.Pagination.TotalPages)
		assert.Equal(t, int64(0), page0.Pagination.CurrentPage)

		page1 := p.List(context.Background(), 1, 1)
		assert.Equal(t, model.OutcomeSuccess, page1.Outcome)
		assert.Equal(t, "Vendor2", page1.Items[0].Name)
	})

	t.Run("page beyond the last page returns exceeded page limit", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		mockRepo.On("FindAll", mock.Anything, 2, 1).Return([]model.Vendor{}, int64(2), nil)

		res := p.List(context.Background(), 2, 1)
		assert.Equal(t, model.OutcomeNotFound, res.Outcome)
		assert.Equal(t, model.KeyExceededPageLimit, res.Key)
	})

	t.Run("empty store returns no vendors found", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		mockRepo.On("FindAll", mock.Anything, 0, 10).Return([]model.Vendor{}, int64(0), nil)

		res := p.List(context.Background(), 0, 10)
		assert.Equal(t, model.OutcomeNotFound, res.Outcome)
		assert.Equal(t, model.KeyNoVendorsFound, res.Key)
	})
}

func TestDeleteByID(t *testing.T) {
	t.Run("echoes the deleted record", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		id := uuid.NewString()
		vendor := vendorRecord(id, "Vendor1", time.Now().UTC())
		mockRepo.On("FindByID", mock.Anything, id).Return(vendor, nil)
		mockRepo.On("DeleteByID", mock.Anything, id).Return(nil)

		res := p.DeleteByID(context.Background(), id)
		assert.Equal(t, model.OutcomeSuccess, res.Outcome)
		assert.Equal(t, vendor, res.Payload)
		mockRepo.AssertExpectations(t)
	})
}

func TestDeleteAll(t *testing.T) {
	t.Run("empty store returns not found", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		mockRepo.On("Count", mock.Anything).Return(int64(0), nil)

		res := p.DeleteAll(context.Background())
		assert.Equal(t, model.OutcomeNotFound, res.Outcome)
		assert.Equal(t, model.KeyNoVendorsFound, res.Key)
		mockRepo.AssertNotCalled(t, "DeleteAll")
	})

	t.Run("non-empty store deletes everything", func(t *testing.T) {
		mockRepo := new(MockRepository[model.Vendor])
		p := newVendorPipeline(mockRepo)

		mockRepo.On("Count", mock.Anything).Return(int64(3), nil)
		mockRepo.On("DeleteAll", mock.Anything).Return(nil)

		res := p.DeleteAll(context.Background())
		assert.Equal(t, model.OutcomeSuccess, res.Outcome)
		mockRepo.AssertExpectations(t)
	})
}
