package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"github.com/haghnazari/Havirkesht/internal/repository"
	"gorm.io/gorm"
)

// ProvinceService implements the province operations.
type ProvinceService struct {
	repo *repository.ProvinceRepository
}

func NewProvinceService(repo *repository.ProvinceRepository) *ProvinceService {
	return &ProvinceService{repo: repo}
}

// CreateProvinceRequest carries the province create payload.
type CreateProvinceRequest struct {
	Province string `json:"province" binding:"required"`
}

func (s *ProvinceService) Create(ctx context.Context, req *CreateProvinceRequest) (*entity.Province, error) {
	taken, err := s.repo.NameTaken(ctx, req.Province, 0)
	if err != nil {
		return nil, fmt.Errorf("check province name: %w", err)
	}
	if taken {
		return nil, repository.Conflictf("Province already exists")
	}

	province := &entity.Province{Province: req.Province}
	if err := s.repo.Create(ctx, province); err != nil {
		return nil, err
	}
	return province, nil
}

func (s *ProvinceService) List(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.Province], error) {
	return s.repo.List(ctx, q)
}

// Delete removes a province and returns its name for the confirmation
// message. Referencing cities block the deletion.
func (s *ProvinceService) Delete(ctx context.Context, id int64) (string, error) {
	province, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", repository.NotFoundf("Province not found")
		}
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return "", repository.Conflictf("Province %d is still referenced by existing cities", id)
		}
		return "", err
	}
	return province.Province, nil
}

// CityService implements the city operations.
type CityService struct {
	repo      *repository.CityRepository
	provinces *repository.ProvinceRepository
}

func NewCityService(repo *repository.CityRepository, provinces *repository.ProvinceRepository) *CityService {
	return &CityService{repo: repo, provinces: provinces}
}

// CreateCityRequest carries the city create payload.
type CreateCityRequest struct {
	City       string `json:"city" binding:"required,min=2,max=100"`
	ProvinceID int64  `json:"province_id" binding:"required"`
}

func (s *CityService) Create(ctx context.Context, req *CreateCityRequest) (*entity.City, error) {
	if _, err := s.provinces.FindByID(ctx, req.ProvinceID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("Province not found")
		}
		return nil, err
	}

	taken, err := s.repo.NameTaken(ctx, req.City, req.ProvinceID, 0)
	if err != nil {
		return nil, fmt.Errorf("check city name: %w", err)
	}
	if taken {
		return nil, repository.Conflictf("City already exists in this province.")
	}

	city := &entity.City{City: req.City, ProvinceID: req.ProvinceID}
	if err := s.repo.Create(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CityService) List(ctx context.Context, q repository.ListQuery, provinceID int64) (*repository.Page[entity.City], error) {
	return s.repo.List(ctx, q, provinceID)
}

func (s *CityService) Delete(ctx context.Context, id int64) (string, error) {
	city, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", repository.NotFoundf("City not found.")
		}
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return "", repository.Conflictf("City %d is still referenced by existing villages", id)
		}
		return "", err
	}
	return city.City, nil
}

// VillageService implements the village operations.
type VillageService struct {
	repo   *repository.VillageRepository
	cities *repository.CityRepository
}

func NewVillageService(repo *repository.VillageRepository, cities *repository.CityRepository) *VillageService {
	return &VillageService{repo: repo, cities: cities}
}

// CreateVillageRequest carries the village create payload.
type CreateVillageRequest struct {
	Village string `json:"village" binding:"required,min=2,max=100"`
	CityID  int64  `json:"city_id" binding:"required"`
}

func (s *VillageService) Create(ctx context.Context, req *CreateVillageRequest) (*entity.Village, error) {
	if _, err := s.cities.FindByID(ctx, req.CityID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("City not found")
		}
		return nil, err
	}

	taken, err := s.repo.NameTaken(ctx, req.Village, req.CityID, 0)
	if err != nil {
		return nil, fmt.Errorf("check village name: %w", err)
	}
	if taken {
		return nil, repository.Conflictf("Village already exists in this city.")
	}

	village := &entity.Village{Village: req.Village, CityID: req.CityID}
	if err := s.repo.Create(ctx, village); err != nil {
		return nil, err
	}
	return village, nil
}

func (s *VillageService) List(ctx context.Context, q repository.ListQuery, cityID int64) (*repository.Page[entity.Village], error) {
	return s.repo.List(ctx, q, cityID)
}

func (s *VillageService) Delete(ctx context.Context, id int64) (string, error) {
	village, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", repository.NotFoundf("Village not found.")
		}
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	return village.Village, nil
}
