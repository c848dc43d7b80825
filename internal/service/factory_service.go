package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"github.com/haghnazari/Havirkesht/internal/repository"
	"gorm.io/gorm"
)

// FactoryService implements the factory operations.
type FactoryService struct {
	repo *repository.FactoryRepository
}

func NewFactoryService(repo *repository.FactoryRepository) *FactoryService {
	return &FactoryService{repo: repo}
}

// CreateFactoryRequest carries the factory create payload.
type CreateFactoryRequest struct {
	FactoryName string `json:"factory_name" binding:"required,min=2,max=255"`
}

func (s *FactoryService) Create(ctx context.Context, req *CreateFactoryRequest) (*entity.Factory, error) {
	taken, err := s.repo.NameTaken(ctx, req.FactoryName, 0)
	if err != nil {
		return nil, fmt.Errorf("check factory name: %w", err)
	}
	if taken {
		return nil, repository.Conflictf("Factory already exists")
	}

	factory := &entity.Factory{FactoryName: req.FactoryName}
	if err := s.repo.Create(ctx, factory); err != nil {
		return nil, err
	}
	return factory, nil
}

func (s *FactoryService) List(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.Factory], error) {
	return s.repo.List(ctx, q)
}

func (s *FactoryService) Delete(ctx context.Context, id int64) (string, error) {
	factory, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", repository.NotFoundf("Factory not found")
		}
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return "", repository.Conflictf("Factory %d is still referenced by existing agreements", id)
		}
		return "", err
	}
	return factory.FactoryName, nil
}

// CropYearService implements the crop year operations.
type CropYearService struct {
	repo *repository.CropYearRepository
}

func NewCropYearService(repo *repository.CropYearRepository) *CropYearService {
	return &CropYearService{repo: repo}
}

// CreateCropYearRequest carries the crop year create payload.
type CreateCropYearRequest struct {
	CropYearName string `json:"crop_year_name" binding:"required,min=2,max=100"`
}

func (s *CropYearService) Create(ctx context.Context, req *CreateCropYearRequest) (*entity.CropYear, error) {
	taken, err := s.repo.NameTaken(ctx, req.CropYearName, 0)
	if err != nil {
		return nil, fmt.Errorf("check crop year name: %w", err)
	}
	if taken {
		return nil, repository.Conflictf("Crop year already exists")
	}

	cropYear := &entity.CropYear{CropYearName: req.CropYearName}
	if err := s.repo.Create(ctx, cropYear); err != nil {
		return nil, err
	}
	return cropYear, nil
}

func (s *CropYearService) List(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.CropYear], error) {
	return s.repo.List(ctx, q)
}

func (s *CropYearService) Delete(ctx context.Context, id int64) (string, error) {
	cropYear, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", repository.NotFoundf("Crop year not found")
		}
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return "", repository.Conflictf("Crop year %d is still referenced by existing agreements", id)
		}
		return "", err
	}
	return cropYear.CropYearName, nil
}
