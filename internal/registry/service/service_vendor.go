package service

import (
	"context"

	"registry7/internal/registry/model"
)

func (s *Service) GetVendor(ctx context.Context, id string) *model.Result[model.Vendor] {
	return s.vendors.GetByID(ctx, id)
}

func (s *Service) GetVendorByName(ctx context.Context, name string) *model.Result[model.Vendor] {
	return s.vendors.GetByName(ctx, name)
}

func (s *Service) ListVendors(ctx context.Context, page, size int) *model.ListResult[model.Vendor] {
	return s.vendors.List(ctx, page, size)
}

func (s *Service) CreateVendor(ctx context.Context, req model.VendorRequest) *model.Result[model.Vendor] {
	return s.vendors.Create(ctx, &model.Vendor{
		Metadata: model.Metadata{
			Name:        req.Name,
			Description: req.Description,
		},
	})
}

func (s *Service) UpdateVendor(ctx context.Context, id string, req model.VendorRequest) *model.Result[model.Vendor] {
	return s.vendors.Update(ctx, id, req.Name, func(existing *model.Vendor) {
		existing.Name = req.Name
		existing.Description = req.Description
	})
}

func (s *Service) DeleteVendor(ctx context.Context, id string) *model.Result[model.Vendor] {
	return s.vendors.DeleteByID(ctx, id)
}

func (s *Service) DeleteAllVendors(ctx context.Context) *model.Result[model.Vendor] {
	return s.vendors.DeleteAll(ctx)
}
