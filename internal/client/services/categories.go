package services

import (
	"context"
	"fmt"

	"github.com/imarchenko/stockroom/internal/client/api"
	"github.com/imarchenko/stockroom/internal/client/models"
)

type CategoryService struct {
	api *api.Client
}

func NewCategoryService(client *api.Client) *CategoryService {
	return &CategoryService{api: client}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := s.api.Get(ctx, "/api/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	var out models.Category
	if err := s.api.Get(ctx, fmt.Sprintf("/api/categories/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoryService) Create(ctx context.Context, c models.Category) (*models.Category, error) {
	var out models.Category
	if err := s.api.Post(ctx, "/api/categories", c, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, c models.Category) (*models.Category, error) {
	var out models.Category
	if err := s.api.Put(ctx, fmt.Sprintf("/api/categories/%d", id), c, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/api/categories/%d", id))
}
