package service

import (
	"context"

	"registry7/internal/registry/model"
)

func (s *Service) GetAssetCategory(ctx context.Context, id string) *model.Result[model.AssetCategory] {
	return s.categories.GetByID(ctx, id)
}

func (s *Service) GetAssetCategoryByName(ctx context.Context, name string) *model.Result[model.AssetCategory] {
	return s.categories.GetByName(ctx, name)
}

func (s *Service) ListAssetCategories(ctx context.Context, page, size int) *model.ListResult[model.AssetCategory] {
	return s.categories.List(ctx, page, size)
}

func (s *Service) CreateAssetCategory(ctx context.Context, req model.AssetCategoryRequest) *model.Result[model.AssetCategory] {
	return s.categories.Create(ctx, &model.AssetCategory{
		Metadata: model.Metadata{
			Name:        req.Name,
			Description: req.Description,
		},
	})
}

func (s *Service) UpdateAssetCategory(ctx context.Context, id string, req model.AssetCategoryRequest) *model.Result[model.AssetCategory] {
	return s.categories.Update(ctx, id, req.Name, func(existing *model.AssetCategory) {
		existing.Name = req.Name
		existing.Description = req.Description
	})
}

func (s *Service) DeleteAssetCategory(ctx context.Context, id string) *model.Result[model.AssetCategory] {
	return s.categories.DeleteByID(ctx, id)
}

func (s *Service) DeleteAllAssetCategories(ctx context.Context) *model.Result[model.AssetCategory] {
	return s.categories.DeleteAll(ctx)
}
