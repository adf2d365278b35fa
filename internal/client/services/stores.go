package services

import (
	"context"
	"fmt"

	"github.com/imarchenko/stockroom/internal/client/api"
	"github.com/imarchenko/stockroom/internal/client/models"
)

type StoreService struct {
	api *api.Client
}

func NewStoreService(client *api.Client) *StoreService {
	return &StoreService{api: client}
}

func (s *StoreService) List(ctx context.Context) ([]models.Store, error) {
	var out []models.Store
	if err := s.api.Get(ctx, "/api/stores", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *StoreService) Get(ctx context.Context, id int64) (*models.Store, error) {
	var out models.Store
	if err := s.api.Get(ctx, fmt.Sprintf("/api/stores/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StoreService) Create(ctx context.Context, st models.Store) (*models.Store, error) {
	var out models.Store
	if err := s.api.Post(ctx, "/api/stores", st, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StoreService) Update(ctx context.Context, id int64, st models.Store) (*models.Store, error) {
	var out models.Store
	if err := s.api.Put(ctx, fmt.Sprintf("/api/stores/%d", id), st, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StoreService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/api/stores/%d", id))
}
