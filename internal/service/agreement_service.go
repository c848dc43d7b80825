package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"github.com/haghnazari/Havirkesht/internal/repository"
)

// FactorySeedService implements the factory/seed agreement operations.
type FactorySeedService struct {
	repo      *repository.FactorySeedRepository
	factories *repository.FactoryRepository
	seeds     *repository.SeedRepository
	cropYears *repository.CropYearRepository
}

func NewFactorySeedService(
	repo *repository.FactorySeedRepository,
	factories *repository.FactoryRepository,
	seeds *repository.SeedRepository,
	cropYears *repository.CropYearRepository,
) *FactorySeedService {
	return &FactorySeedService{repo: repo, factories: factories, seeds: seeds, cropYears: cropYears}
}

// CreateFactorySeedRequest carries the seed agreement create payload.
// Prices and amount may legitimately be zero while terms are negotiated.
type CreateFactorySeedRequest struct {
	FactoryID    int64   `json:"factory_id" binding:"required"`
	SeedID       int64   `json:"seed_id" binding:"required"`
	CropYearID   int64   `json:"crop_year_id" binding:"required"`
	Amount       float64 `json:"amount" binding:"gte=0"`
	FarmerPrice  float64 `json:"farmer_price" binding:"gte=0"`
	FactoryPrice float64 `json:"factory_price" binding:"gte=0"`
}

// UpdateFactorySeedRequest is a partial update; nil fields keep their
// stored value.
type UpdateFactorySeedRequest struct {
	FactoryID    *int64   `json:"factory_id"`
	SeedID       *int64   `json:"seed_id"`
	CropYearID   *int64   `json:"crop_year_id"`
	Amount       *float64 `json:"amount"`
	FarmerPrice  *float64 `json:"farmer_price"`
	FactoryPrice *float64 `json:"factory_price"`
}

func (s *FactorySeedService) checkParents(ctx context.Context, factoryID, seedID, cropYearID int64) error {
	if _, err := s.factories.FindByID(ctx, factoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.NotFoundf("Factory not found")
		}
		return err
	}
	if _, err := s.seeds.FindByID(ctx, seedID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.NotFoundf("Seed not found")
		}
		return err
	}
	if _, err := s.cropYears.FindByID(ctx, cropYearID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.NotFoundf("Crop year not found")
		}
		return err
	}
	return nil
}

func (s *FactorySeedService) Create(ctx context.Context, req *CreateFactorySeedRequest) (*repository.FactorySeedRow, error) {
	if err := s.checkParents(ctx, req.FactoryID, req.SeedID, req.CropYearID); err != nil {
		return nil, err
	}

	taken, err := s.repo.ComboTaken(ctx, req.FactoryID, req.SeedID, req.CropYearID, 0)
	if err != nil {
		return nil, fmt.Errorf("check agreement combination: %w", err)
	}
	if taken {
		return nil, repository.Conflictf(
			"A record for factory %d, seed %d, and crop year %d already exists",
			req.FactoryID, req.SeedID, req.CropYearID)
	}

	agreement := &entity.FactorySeed{
		FactoryID:    req.FactoryID,
		SeedID:       req.SeedID,
		CropYearID:   req.CropYearID,
		Amount:       req.Amount,
		FarmerPrice:  req.FarmerPrice,
		FactoryPrice: req.FactoryPrice,
	}
	if err := s.repo.Create(ctx, agreement); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, agreement.ID)
}

func (s *FactorySeedService) Update(ctx context.Context, id int64, req *UpdateFactorySeedRequest) (*repository.FactorySeedRow, error) {
	agreement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("Factory seed record not found")
		}
		return nil, err
	}

	if req.FactoryID != nil {
		agreement.FactoryID = *req.FactoryID
	}
	if req.SeedID != nil {
		agreement.SeedID = *req.SeedID
	}
	if req.CropYearID != nil {
		agreement.CropYearID = *req.CropYearID
	}
	if req.Amount != nil {
		agreement.Amount = *req.Amount
	}
	if req.FarmerPrice != nil {
		agreement.FarmerPrice = *req.FarmerPrice
	}
	if req.FactoryPrice != nil {
		agreement.FactoryPrice = *req.FactoryPrice
	}

	if err := s.checkParents(ctx, agreement.FactoryID, agreement.SeedID, agreement.CropYearID); err != nil {
		return nil, err
	}

	taken, err := s.repo.ComboTaken(ctx, agreement.FactoryID, agreement.SeedID, agreement.CropYearID, id)
	if err != nil {
		return nil, fmt.Errorf("check agreement combination: %w", err)
	}
	if taken {
		return nil, repository.Conflictf(
			"A record for factory %d, seed %d, and crop year %d already exists",
			agreement.FactoryID, agreement.SeedID, agreement.CropYearID)
	}

	if err := s.repo.Update(ctx, agreement); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, id)
}

func (s *FactorySeedService) List(ctx context.Context, q repository.ListQuery, filter repository.AgreementFilter) (*repository.Page[repository.FactorySeedRow], error) {
	return s.repo.List(ctx, q, filter)
}

func (s *FactorySeedService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.NotFoundf("Factory seed record not found")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// FactoryPesticideService implements the factory/pesticide agreement
// operations.
type FactoryPesticideService struct {
	repo       *repository.FactoryPesticideRepository
	factories  *repository.FactoryRepository
	pesticides *repository.PesticideRepository
	cropYears  *repository.CropYearRepository
}

func NewFactoryPesticideService(
	repo *repository.FactoryPesticideRepository,
	factories *repository.FactoryRepository,
	pesticides *repository.PesticideRepository,
	cropYears *repository.CropYearRepository,
) *FactoryPesticideService {
	return &FactoryPesticideService{repo: repo, factories: factories, pesticides: pesticides, cropYears: cropYears}
}

// CreateFactoryPesticideRequest carries the pesticide agreement create
// payload.
type CreateFactoryPesticideRequest struct {
	FactoryID    int64   `json:"factory_id" binding:"required"`
	PesticideID  int64   `json:"pesticide_id" binding:"required"`
	CropYearID   int64   `json:"crop_year_id" binding:"required"`
	Amount       float64 `json:"amount" binding:"gte=0"`
	FarmerPrice  float64 `json:"farmer_price" binding:"gte=0"`
	FactoryPrice float64 `json:"factory_price" binding:"gte=0"`
}

// UpdateFactoryPesticideRequest is a partial update; nil fields keep
// their stored value.
type UpdateFactoryPesticideRequest struct {
	FactoryID    *int64   `json:"factory_id"`
	PesticideID  *int64   `json:"pesticide_id"`
	CropYearID   *int64   `json:"crop_year_id"`
	Amount       *float64 `json:"amount"`
	FarmerPrice  *float64 `json:"farmer_price"`
	FactoryPrice *float64 `json:"factory_price"`
}

func (s *FactoryPesticideService) checkParents(ctx context.Context, factoryID, pesticideID, cropYearID int64) error {
	if _, err := s.factories.FindByID(ctx, factoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.NotFoundf("Factory not found")
		}
		return err
	}
	if _, err := s.pesticides.FindByID(ctx, pesticideID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.NotFoundf("Pesticide not found")
		}
		return err
	}
	if _, err := s.cropYears.FindByID(ctx, cropYearID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.NotFoundf("Crop year not found")
		}
		return err
	}
	return nil
}

func (s *FactoryPesticideService) Create(ctx context.Context, req *CreateFactoryPesticideRequest) (*repository.FactoryPesticideRow, error) {
	if err := s.checkParents(ctx, req.FactoryID, req.PesticideID, req.CropYearID); err != nil {
		return nil, err
	}

	taken, err := s.repo.ComboTaken(ctx, req.FactoryID, req.PesticideID, req.CropYearID, 0)
	if err != nil {
		return nil, fmt.Errorf("check agreement combination: %w", err)
	}
	if taken {
		return nil, repository.Conflictf(
			"A record for factory %d, pesticide %d, and crop year %d already exists",
			req.FactoryID, req.PesticideID, req.CropYearID)
	}

	agreement := &entity.FactoryPesticide{
		FactoryID:    req.FactoryID,
		PesticideID:  req.PesticideID,
		CropYearID:   req.CropYearID,
		Amount:       req.Amount,
		FarmerPrice:  req.FarmerPrice,
		FactoryPrice: req.FactoryPrice,
	}
	if err := s.repo.Create(ctx, agreement); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, agreement.ID)
}

func (s *FactoryPesticideService) Update(ctx context.Context, id int64, req *UpdateFactoryPesticideRequest) (*repository.FactoryPesticideRow, error) {
	agreement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("Factory pesticide record not found")
		}
		return nil, err
	}

	if req.FactoryID != nil {
		agreement.FactoryID = *req.FactoryID
	}
	if req.PesticideID != nil {
		agreement.PesticideID = *req.PesticideID
	}
	if req.CropYearID != nil {
		agreement.CropYearID = *req.CropYearID
	}
	if req.Amount != nil {
		agreement.Amount = *req.Amount
	}
	if req.FarmerPrice != nil {
		agreement.FarmerPrice = *req.FarmerPrice
	}
	if req.FactoryPrice != nil {
		agreement.FactoryPrice = *req.FactoryPrice
	}

	if err := s.checkParents(ctx, agreement.FactoryID, agreement.PesticideID, agreement.CropYearID); err != nil {
		return nil, err
	}

	taken, err := s.repo.ComboTaken(ctx, agreement.FactoryID, agreement.PesticideID, agreement.CropYearID, id)
	if err != nil {
		return nil, fmt.Errorf("check agreement combination: %w", err)
	}
	if taken {
		return nil, repository.Conflictf(
			"A record for factory %d, pesticide %d, and crop year %d already exists",
			agreement.FactoryID, agreement.PesticideID, agreement.CropYearID)
	}

	if err := s.repo.Update(ctx, agreement); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, id)
}

func (s *FactoryPesticideService) List(ctx context.Context, q repository.ListQuery, filter repository.AgreementFilter) (*repository.Page[repository.FactoryPesticideRow], error) {
	return s.repo.List(ctx, q, filter)
}

func (s *FactoryPesticideService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.NotFoundf("Factory pesticide record not found")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
