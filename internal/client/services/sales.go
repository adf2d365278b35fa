package services

import (
	"context"
	"fmt"

	"github.com/imarchenko/stockroom/internal/client/api"
	"github.com/imarchenko/stockroom/internal/client/models"
)

type SaleService struct {
	api *api.Client
}

func NewSaleService(client *api.Client) *SaleService {
	return &SaleService{api: client}
}

func (s *SaleService) List(ctx context.Context) ([]models.Sale, error) {
	var out []models.Sale
	if err := s.api.Get(ctx, "/api/sales", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SaleService) Get(ctx context.Context, id int64) (*models.Sale, error) {
	var out models.Sale
	if err := s.api.Get(ctx, fmt.Sprintf("/api/sales/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SaleService) Create(ctx context.Context, req models.SaleRequest) (*models.Sale, error) {
	var out models.Sale
	if err := s.api.Post(ctx, "/api/sales", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
