package services

import (
	"context"

	"github.com/imarchenko/stockroom/internal/client/api"
	"github.com/imarchenko/stockroom/internal/client/models"
)

type TransactionService struct {
	api *api.Client
}

func NewTransactionService(client *api.Client) *TransactionService {
	return &TransactionService{api: client}
}

func (s *TransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := s.api.Get(ctx, "/api/transactions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TransactionService) Create(ctx context.Context, tr models.Transaction) (*models.Transaction, error) {
	var out models.Transaction
	if err := s.api.Post(ctx, "/api/transactions", tr, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
