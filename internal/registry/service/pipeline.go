package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"registry7/internal/registry/model"
	"registry7/internal/registry/repository"

	"github.com/google/uuid"
)

// msgStoreFailure is the only message a caller ever sees for an
// infrastructure failure; the underlying error is logged, not exposed.
const msgStoreFailure = "An unexpected error occurred while accessing the database."

// OperationRecorder counts repository operations by entity, operation and
// outcome. A nil recorder disables counting.
type OperationRecorder interface {
	RecordRepositoryOperation(ctx context.Context, entity, op, outcome string)
}

// Pipeline implements the validation, uniqueness and pagination rules shared
// by every entity type. The three entity services are thin variants over it.
type Pipeline[E any, P model.Record[E]] struct {
	repo     repository.Repository[E]
	keys     model.EntityKeys
	recorder OperationRecorder
	now      func() time.Time
}

func NewPipeline[E any, P model.Record[E]](repo repository.Repository[E], keys model.EntityKeys, recorder OperationRecorder) *Pipeline[E, P] {
	return &Pipeline[E, P]{
		repo:     repo,
		keys:     keys,
		recorder: recorder,
		now:      time.Now,
	}
}

// checkIdentifier rejects blank and non-UUID identifiers before any store
// access. Returns the trimmed identifier and a nil result on success.
func (p *Pipeline[E, P]) checkIdentifier(id string) (string, *model.Result[E]) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", model.BadRequest[E](model.KeyIdentifierMissing,
			"A "+strings.ToLower(p.keys.Singular)+" identifier must be provided")
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", model.BadRequest[E](model.KeyIdentifierNotUUID,
			"The identifier '"+id+"' is not a valid UUID")
	}
	return id, nil
}

func (p *Pipeline[E, P]) GetByID(ctx context.Context, id string) *model.Result[E] {
	id, fail := p.checkIdentifier(id)
	if fail != nil {
		return fail
	}

	entity, err := p.repo.FindByID(ctx, id)
	if err != nil {
		return p.storeFailure(ctx, "find_by_id", err)
	}
	if entity == nil {
		p.record(ctx, "find_by_id", "not_found")
		return model.NotFound[E](p.keys.NotFoundByID,
			"No %s found with the identifier '%s'", strings.ToLower(p.keys.Singular), id)
	}

	p.record(ctx, "find_by_id", "success")
	return model.Success(entity)
}

func (p *Pipeline[E, P]) GetByName(ctx context.Context, name string) *model.Result[E] {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.BadRequest[E](model.KeyMissingDataInput,
			"A "+strings.ToLower(p.keys.Singular)+" name must be provided")
	}

	entity, err := p.repo.FindFirstByName(ctx, name)
	if err != nil {
		return p.storeFailure(ctx, "find_by_name", err)
	}
	if entity == nil {
		p.record(ctx, "find_by_name", "not_found")
		return model.NotFound[E](p.keys.NotFoundByName,
			"No %s found with the name '%s'", strings.ToLower(p.keys.Singular), name)
	}

	p.record(ctx, "find_by_name", "success")
	return model.Success(entity)
}

func (p *Pipeline[E, P]) List(ctx context.Context, page, size int) *model.ListResult[E] {
	items, total, err := p.repo.FindAll(ctx, page, size)
	if err != nil {
		p.logStoreError("find_all", err)
		p.record(ctx, "find_all", "error")
		return model.FailureList[E](msgStoreFailure)
	}

	pagination := model.NewPaginationInfo(total, page, size)
	if len(items) == 0 {
		p.record(ctx, "find_all", "not_found")
		// Records exist but the requested page lies past the last one.
		if total > 0 {
			return model.NotFoundList[E](model.KeyExceededPageLimit,
				"Page %d exceeds the last page of results (%d)", page, pagination.TotalPages-1)
		}
		return model.NotFoundList[E](p.keys.NoneFound,
			"No %s were found in the database", strings.ToLower(p.keys.Plural))
	}

	p.record(ctx, "find_all", "success")
	return model.SuccessList(items, pagination)
}

func (p *Pipeline[E, P]) Create(ctx context.Context, entity *E) *model.Result[E] {
	meta := P(entity).Meta()

	existing, err := p.repo.FindFirstByName(ctx, meta.Name)
	if err != nil {
		return p.storeFailure(ctx, "save", err)
	}
	if existing != nil {
		p.record(ctx, "save", "conflict")
		return model.Conflict[E](p.keys.Duplicate,
			"A %s named '%s' already exists", strings.ToLower(p.keys.Singular), meta.Name)
	}

	now := p.now().UTC()
	meta.ID = uuid.NewString()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	if err := p.repo.Save(ctx, entity); err != nil {
		// The unique index backs up the pre-check above; a concurrent
		// create racing past it still surfaces as a conflict.
		if errors.Is(err, repository.ErrDuplicate) {
			p.record(ctx, "save", "conflict")
			return model.Conflict[E](p.keys.Duplicate,
				"A %s named '%s' already exists", strings.ToLower(p.keys.Singular), meta.Name)
		}
		return p.storeFailure(ctx, "save", err)
	}

	p.record(ctx, "save", "success")
	return model.Success(entity)
}

// Update replaces the mutable fields of an existing record. The identifier
// and creation timestamp always survive; apply must not be relied on to
// preserve them.
func (p *Pipeline[E, P]) Update(ctx context.Context, id, newName string, apply func(existing *E)) *model.Result[E] {
	id, fail := p.checkIdentifier(id)
	if fail != nil {
		return fail
	}

	existing, err := p.repo.FindByID(ctx, id)
	if err != nil {
		return p.storeFailure(ctx, "update", err)
	}
	if existing == nil {
		p.record(ctx, "update", "not_found")
		return model.NotFound[E](p.keys.NotFoundByID,
			"No %s found with the identifier '%s'", strings.ToLower(p.keys.Singular), id)
	}

	meta := P(existing).Meta()
	if newName != meta.Name {
		owner, err := p.repo.FindFirstByName(ctx, newName)
		if err != nil {
			return p.storeFailure(ctx, "update", err)
		}
		if owner != nil && P(owner).Meta().ID != meta.ID {
			p.record(ctx, "update", "conflict")
			return model.Conflict[E](p.keys.Duplicate,
				"A %s named '%s' already exists", strings.ToLower(p.keys.Singular), newName)
		}
	}

	createdAt := meta.CreatedAt
	apply(existing)
	meta.ID = id
	meta.CreatedAt = createdAt
	meta.UpdatedAt = p.now().UTC()

	if err := p.repo.Save(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			p.record(ctx, "update", "conflict")
			return model.Conflict[E](p.keys.Duplicate,
				"A %s named '%s' already exists", strings.ToLower(p.keys.Singular), newName)
		}
		return p.storeFailure(ctx, "update", err)
	}

	p.record(ctx, "update", "success")
	return model.Success(existing)
}

// DeleteByID removes one record and echoes it back as the payload.
func (p *Pipeline[E, P]) DeleteByID(ctx context.Context, id string) *model.Result[E] {
	id, fail := p.checkIdentifier(id)
	if fail != nil {
		return fail
	}

	existing, err := p.repo.FindByID(ctx, id)
	if err != nil {
		return p.storeFailure(ctx, "delete", err)
	}
	if existing == nil {
		p.record(ctx, "delete", "not_found")
		return model.NotFound[E](p.keys.NotFoundByID,
			"No %s found with the identifier '%s'", strings.ToLower(p.keys.Singular), id)
	}

	if err := p.repo.DeleteByID(ctx, id); err != nil {
		return p.storeFailure(ctx, "delete", err)
	}

	p.record(ctx, "delete", "success")
	return model.Success(existing)
}

func (p *Pipeline[E, P]) DeleteAll(ctx context.Context) *model.Result[E] {
	count, err := p.repo.Count(ctx)
	if err != nil {
		return p.storeFailure(ctx, "delete_all", err)
	}
	if count == 0 {
		p.record(ctx, "delete_all", "not_found")
		return model.NotFound[E](p.keys.NoneFound,
			"No %s were found in the database", strings.ToLower(p.keys.Plural))
	}

	if err := p.repo.DeleteAll(ctx); err != nil {
		return p.storeFailure(ctx, "delete_all", err)
	}

	p.record(ctx, "delete_all", "success")
	return model.Success[E](nil)
}

func (p *Pipeline[E, P]) storeFailure(ctx context.Context, op string, err error) *model.Result[E] {
	p.logStoreError(op, err)
	p.record(ctx, op, "error")
	return model.Failure[E](msgStoreFailure)
}

func (p *Pipeline[E, P]) logStoreError(op string, err error) {
	slog.Error("repository operation failed",
		"entity", p.keys.Singular,
		"op", op,
		"error", err,
	)
}

func (p *Pipeline[E, P]) record(ctx context.Context, op, outcome string) {
	if p.recorder != nil {
		p.recorder.RecordRepositoryOperation(ctx, p.keys.Singular, op, outcome)
	}
}
