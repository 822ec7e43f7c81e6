package service

import (
	"context"

	"registry7/internal/registry/model"
)

func (s *Service) GetSystem(ctx context.Context, id string) *model.Result[model.System] {
	return s.systems.GetByID(ctx, id)
}

func (s *Service) GetSystemByName(ctx context.Context, name string) *model.Result[model.System] {
	return s.systems.GetByName(ctx, name)
}

func (s *Service) ListSystems(ctx context.Context, page, size int) *model.ListResult[model.System] {
	return s.systems.List(ctx, page, size)
}

func (s *Service) CreateSystem(ctx context.Context, req model.SystemRequest) *model.Result[model.System] {
	return s.systems.Create(ctx, &model.System{
		Metadata: model.Metadata{
			Name:        req.Name,
			Description: req.Description,
		},
		Organisation:          req.Organisation,
		Location:              req.Location,
		AdditionalInformation: req.AdditionalInformation,
	})
}

func (s *Service) UpdateSystem(ctx context.Context, id string, req model.SystemRequest) *model.Result[model.System] {
	return s.systems.Update(ctx, id, req.Name, func(existing *model.System) {
		existing.Name = req.Name
		existing.Description = req.Description
		existing.Organisation = req.Organisation
		existing.Location = req.Location
		existing.AdditionalInformation = req.AdditionalInformation
	})
}

func (s *Service) DeleteSystem(ctx context.Context, id string) *model.Result[model.System] {
	return s.systems.DeleteByID(ctx, id)
}

func (s *Service) DeleteAllSystems(ctx context.Context) *model.Result[model.System] {
	return s.systems.DeleteAll(ctx)
}
