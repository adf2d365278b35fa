package services

import (
	"context"
	"fmt"

	"github.com/imarchenko/stockroom/internal/client/api"
	"github.com/imarchenko/stockroom/internal/client/models"
)

type PurchaseService struct {
	api *api.Client
}

func NewPurchaseService(client *api.Client) *PurchaseService {
	return &PurchaseService{api: client}
}

func (s *PurchaseService) List(ctx context.Context) ([]models.Purchase, error) {
	var out []models.Purchase
	if err := s.api.Get(ctx, "/api/purchases", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PurchaseService) Get(ctx context.Context, id int64) (*models.Purchase, error) {
	var out models.Purchase
	if err := s.api.Get(ctx, fmt.Sprintf("/api/purchases/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PurchaseService) Create(ctx context.Context, req models.PurchaseRequest) (*models.Purchase, error) {
	var out models.Purchase
	if err := s.api.Post(ctx, "/api/purchases", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
