package service

import (
	"context"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Add(ctx context.Context, c *domain.Client) error {
	return s.clientRepo.Create(ctx, c)
}

func (s *clientService) Get(ctx context.Context, id int32) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) Update(ctx context.Context, c *domain.Client) error {
	return s.clientRepo.Update(ctx, c)
}

func (s *clientService) List(ctx context.Context, search string, page, pageSize int32) ([]domain.Client, int32, error) {
	return s.clientRepo.List(ctx, search, page, pageSize)
}
