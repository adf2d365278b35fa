package services

import (
	"context"
	"fmt"

	"github.com/imarchenko/stockroom/internal/client/api"
	"github.com/imarchenko/stockroom/internal/client/models"
)

type SupplierService struct {
	api *api.Client
}

func NewSupplierService(client *api.Client) *SupplierService {
	return &SupplierService{api: client}
}

func (s *SupplierService) List(ctx context.Context) ([]models.Supplier, error) {
	var out []models.Supplier
	if err := s.api.Get(ctx, "/api/suppliers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SupplierService) Get(ctx context.Context, id int64) (*models.Supplier, error) {
	var out models.Supplier
	if err := s.api.Get(ctx, fmt.Sprintf("/api/suppliers/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SupplierService) Create(ctx context.Context, sup models.Supplier) (*models.Supplier, error) {
	var out models.Supplier
	if err := s.api.Post(ctx, "/api/suppliers", sup, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SupplierService) Update(ctx context.Context, id int64, sup models.Supplier) (*models.Supplier, error) {
	var out models.Supplier
	if err := s.api.Put(ctx, fmt.Sprintf("/api/suppliers/%d", id), sup, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/api/suppliers/%d", id))
}
