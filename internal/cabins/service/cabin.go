package service

import (
	"context"
	"errors"

	cabinerrors "cabanas/internal/cabins/errors"
	"cabanas/internal/cabins/repository"
	apperrors "cabanas/pkg/errors"
	"cabanas/pkg/logger"
	"cabanas/pkg/model"
)

type CabinService interface {
	List(ctx context.Context) ([]model.Cabin, error)
	Get(ctx context.Context, id string) (*model.Cabin, error)
}

type cabinService struct {
	repo repository.CabinRepository
	log  *logger.Logger
}

func NewCabinService(repo repository.CabinRepository, log *logger.Logger) CabinService {
	return &cabinService{
		repo: repo,
		log:  log,
	}
}

func (s *cabinService) List(ctx context.Context) ([]model.Cabin, error) {
	cabins, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list cabins", err)
	}
	return cabins, nil
}

func (s *cabinService) Get(ctx context.Context, id string) (*model.Cabin, error) {
	cabin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, cabinerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("cabin", id)
		}
		return nil, apperrors.Internal("failed to fetch cabin", err)
	}
	return cabin, nil
}
