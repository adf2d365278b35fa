package services

import (
	"context"
	"fmt"

	"github.com/imarchenko/stockroom/internal/client/api"
	"github.com/imarchenko/stockroom/internal/client/models"
)

type ProductService struct {
	api *api.Client
}

func NewProductService(client *api.Client) *ProductService {
	return &ProductService{api: client}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := s.api.Get(ctx, "/api/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	var out models.Product
	if err := s.api.Get(ctx, fmt.Sprintf("/api/products/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductService) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := s.api.Post(ctx, "/api/products", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := s.api.Put(ctx, fmt.Sprintf("/api/products/%d", id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/api/products/%d", id))
}
