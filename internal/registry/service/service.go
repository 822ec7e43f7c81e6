package service

import (
	"context"

	"registry7/internal/registry/model"
	"registry7/internal/registry/repository"
)

// RegistryService is the operation surface the handlers consume: the same
// seven operations for each of the three entity types.
type RegistryService interface {
	GetSystem(ctx context.Context, id string) *model.Result[model.System]
	GetSystemByName(ctx context.Context, name string) *model.Result[model.System]
	ListSystems(ctx context.Context, page, size int) *model.ListResult[model.System]
	CreateSystem(ctx context.Context, req model.SystemRequest) *model.Result[model.System]
	UpdateSystem(ctx context.Context, id string, req model.SystemRequest) *model.Result[model.System]
	DeleteSystem(ctx context.Context, id string) *model.Result[model.System]
	DeleteAllSystems(ctx context.Context) *model.Result[model.System]

	GetVendor(ctx context.Context, id string) *model.Result[model.Vendor]
	GetVendorByName(ctx context.Context, name string) *model.Result[model.Vendor]
	ListVendors(ctx context.Context, page, size int) *model.ListResult[model.Vendor]
	CreateVendor(ctx context.Context, req model.VendorRequest) *model.Result[model.Vendor]
	UpdateVendor(ctx context.Context, id string, req model.VendorRequest) *model.Result[model.Vendor]
	DeleteVendor(ctx context.Context, id string) *model.Result[model.Vendor]
	DeleteAllVendors(ctx context.Context) *model.Result[model.Vendor]

	GetAssetCategory(ctx context.Context, id string) *model.Result[model.AssetCategory]
	GetAssetCategoryByName(ctx context.Context, name string) *model.Result[model.AssetCategory]
	ListAssetCategories(ctx context.Context, page, size int) *model.ListResult[model.AssetCategory]
	CreateAssetCategory(ctx context.Context, req model.AssetCategoryRequest) *model.Result[model.AssetCategory]
	UpdateAssetCategory(ctx context.Context, id string, req model.AssetCategoryRequest) *model.Result[model.AssetCategory]
	DeleteAssetCategory(ctx context.Context, id string) *model.Result[model.AssetCategory]
	DeleteAllAssetCategories(ctx context.Context) *model.Result[model.AssetCategory]
}

type Service struct {
	systems    *Pipeline[model.System, *model.System]
	vendors    *Pipeline[model.Vendor, *model.Vendor]
	categories *Pipeline[model.AssetCategory, *model.AssetCategory]
}

func NewService(
	systems repository.Repository[model.System],
	vendors repository.Repository[model.Vendor],
	categories repository.Repository[model.AssetCategory],
	recorder OperationRecorder,
) *Service {
	return &Service{
		systems:    NewPipeline[model.System, *model.System](systems, model.SystemKeys, recorder),
		vendors:    NewPipeline[model.Vendor, *model.Vendor](vendors, model.VendorKeys, recorder),
		categories: NewPipeline[model.AssetCategory, *model.AssetCategory](categories, model.AssetCategoryKeys, recorder),
	}
}
