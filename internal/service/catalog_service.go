package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"github.com/haghnazari/Havirkesht/internal/repository"
	"gorm.io/gorm"
)

// MeasureUnitService implements the measure unit operations.
type MeasureUnitService struct {
	repo *repository.MeasureUnitRepository
}

func NewMeasureUnitService(repo *repository.MeasureUnitRepository) *MeasureUnitService {
	return &MeasureUnitService{repo: repo}
}

// CreateMeasureUnitRequest carries the measure unit create payload.
type CreateMeasureUnitRequest struct {
	UnitName string `json:"unit_name" binding:"required,min=1,max=100"`
}

func (s *MeasureUnitService) Create(ctx context.Context, req *CreateMeasureUnitRequest) (*entity.MeasureUnit, error) {
	taken, err := s.repo.NameTaken(ctx, req.UnitName, 0)
	if err != nil {
		return nil, fmt.Errorf("check unit name: %w", err)
	}
	if taken {
		return nil, repository.Conflictf("Measure unit already exists")
	}

	unit := &entity.MeasureUnit{UnitName: req.UnitName}
	if err := s.repo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *MeasureUnitService) List(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.MeasureUnit], error) {
	return s.repo.List(ctx, q)
}

func (s *MeasureUnitService) Delete(ctx context.Context, id int64) (string, error) {
	unit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", repository.NotFoundf("Measure unit not found")
		}
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return "", repository.Conflictf("Measure unit %d is still referenced by seeds or pesticides", id)
		}
		return "", err
	}
	return unit.UnitName, nil
}

// SeedService implements the seed catalog operations.
type SeedService struct {
	repo  *repository.SeedRepository
	units *repository.MeasureUnitRepository
}

func NewSeedService(repo *repository.SeedRepository, units *repository.MeasureUnitRepository) *SeedService {
	return &SeedService{repo: repo, units: units}
}

// CreateSeedRequest carries the seed create payload.
type CreateSeedRequest struct {
	SeedName      string `json:"seed_name" binding:"required,min=2,max=150"`
	MeasureUnitID int64  `json:"measure_unit_id" binding:"required"`
}

func (s *SeedService) Create(ctx context.Context, req *CreateSeedRequest) (*repository.SeedRow, error) {
	if _, err := s.units.FindByID(ctx, req.MeasureUnitID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("Measure unit not found")
		}
		return nil, err
	}

	taken, err := s.repo.NameTaken(ctx, req.SeedName, 0)
	if err != nil {
		return nil, fmt.Errorf("check seed name: %w", err)
	}
	if taken {
		return nil, repository.Conflictf("Seed already exists")
	}

	seed := &entity.Seed{SeedName: req.SeedName, MeasureUnitID: req.MeasureUnitID}
	if err := s.repo.Create(ctx, seed); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, seed.ID)
}

func (s *SeedService) List(ctx context.Context, q repository.ListQuery, measureUnitID int64) (*repository.Page[repository.SeedRow], error) {
	return s.repo.List(ctx, q, measureUnitID)
}

func (s *SeedService) Delete(ctx context.Context, id int64) (string, error) {
	seed, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", repository.NotFoundf("Seed not found")
		}
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return "", repository.Conflictf("Seed %d is still referenced by factory agreements", id)
		}
		return "", err
	}
	return seed.SeedName, nil
}

// PesticideService implements the pesticide catalog operations.
type PesticideService struct {
	repo  *repository.PesticideRepository
	units *repository.MeasureUnitRepository
}

func NewPesticideService(repo *repository.PesticideRepository, units *repository.MeasureUnitRepository) *PesticideService {
	return &PesticideService{repo: repo, units: units}
}

// CreatePesticideRequest carries the pesticide create payload.
type CreatePesticideRequest struct {
	PesticideName string `json:"pesticide_name" binding:"required,min=2,max=150"`
	MeasureUnitID int64  `json:"measure_unit_id" binding:"required"`
}

func (s *PesticideService) Create(ctx context.Context, req *CreatePesticideRequest) (*repository.PesticideRow, error) {
	if _, err := s.units.FindByID(ctx, req.MeasureUnitID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("Measure unit not found")
		}
		return nil, err
	}

	taken, err := s.repo.NameTaken(ctx, req.PesticideName, 0)
	if err != nil {
		return nil, fmt.Errorf("check pesticide name: %w", err)
	}
	if taken {
		return nil, repository.Conflictf("Pesticide already exists")
	}

	pesticide := &entity.Pesticide{PesticideName: req.PesticideName, MeasureUnitID: req.MeasureUnitID}
	if err := s.repo.Create(ctx, pesticide); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, pesticide.ID)
}

func (s *PesticideService) List(ctx context.Context, q repository.ListQuery, measureUnitID int64) (*repository.Page[repository.PesticideRow], error) {
	return s.repo.List(ctx, q, measureUnitID)
}

func (s *PesticideService) Delete(ctx context.Context, id int64) (string, error) {
	pesticide, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", repository.NotFoundf("Pesticide not found")
		}
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return "", repository.Conflictf("Pesticide %d is still referenced by factory agreements", id)
		}
		return "", err
	}
	return pesticide.PesticideName, nil
}
