package services

import (
	"context"
	"fmt"

	"github.com/imarchenko/stockroom/internal/client/api"
	"github.com/imarchenko/stockroom/internal/client/models"
)

type InventoryService struct {
	api *api.Client
}

func NewInventoryService(client *api.Client) *InventoryService {
	return &InventoryService{api: client}
}

func (s *InventoryService) List(ctx context.Context) ([]models.Inventory, error) {
	var out []models.Inventory
	if err := s.api.Get(ctx, "/api/inventories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *InventoryService) Get(ctx context.Context, id int64) (*models.Inventory, error) {
	var out models.Inventory
	if err := s.api.Get(ctx, fmt.Sprintf("/api/inventories/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InventoryService) Create(ctx context.Context, inv models.Inventory) (*models.Inventory, error) {
	var out models.Inventory
	if err := s.api.Post(ctx, "/api/inventories", inv, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InventoryService) Update(ctx context.Context, id int64, inv models.Inventory) (*models.Inventory, error) {
	var out models.Inventory
	if err := s.api.Put(ctx, fmt.Sprintf("/api/inventories/%d", id), inv, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
