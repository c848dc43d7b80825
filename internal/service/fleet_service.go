package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"github.com/haghnazari/Havirkesht/internal/repository"
	"gorm.io/gorm"
)

// CarService implements the car (vehicle model) operations.
type CarService struct {
	repo *repository.CarRepository
}

func NewCarService(repo *repository.CarRepository) *CarService {
	return &CarService{repo: repo}
}

// CreateCarRequest carries the car create payload.
type CreateCarRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// UpdateCarRequest is a partial update; nil fields keep their stored
// value.
type UpdateCarRequest struct {
	Name *string `json:"name"`
}

func (s *CarService) Create(ctx context.Context, req *CreateCarRequest) (*entity.Car, error) {
	taken, err := s.repo.NameTaken(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("check car name: %w", err)
	}
	if taken {
		return nil, repository.Conflictf("Car already exists")
	}

	car := &entity.Car{Name: req.Name}
	if err := s.repo.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *CarService) Get(ctx context.Context, id int64) (*entity.Car, error) {
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("Car not found")
		}
		return nil, err
	}
	return car, nil
}

func (s *CarService) Update(ctx context.Context, id int64, req *UpdateCarRequest) (*entity.Car, error) {
	car, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		taken, err := s.repo.NameTaken(ctx, *req.Name, id)
		if err != nil {
			return nil, fmt.Errorf("check car name: %w", err)
		}
		if taken {
			return nil, repository.Conflictf("Car already exists")
		}
		car.Name = *req.Name
	}

	if err := s.repo.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *CarService) List(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.Car], error) {
	return s.repo.List(ctx, q)
}

func (s *CarService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return repository.Conflictf("Car %d is still assigned to existing drivers", id)
		}
		return err
	}
	return nil
}

// DriverService implements the driver operations.
type DriverService struct {
	repo *repository.DriverRepository
	cars *repository.CarRepository
}

func NewDriverService(repo *repository.DriverRepository, cars *repository.CarRepository) *DriverService {
	return &DriverService{repo: repo, cars: cars}
}

// CreateDriverRequest carries the driver create payload. National code
// and phone number follow the Iranian 10- and 11-digit formats.
type CreateDriverRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=100"`
	LastName     string  `json:"last_name" binding:"required,min=2,max=100"`
	NationalCode string  `json:"national_code" binding:"required,len=10,numeric"`
	PhoneNumber  string  `json:"phone_number" binding:"required,len=11,numeric"`
	CarID        int64   `json:"car_id" binding:"required"`
	LicensePlate string  `json:"license_plate" binding:"required,max=20"`
	CapacityTon  float64 `json:"capacity_ton" binding:"required,gt=0"`
}

// UpdateDriverRequest is a partial update; nil fields keep their stored
// value.
type UpdateDriverRequest struct {
	Name         *string  `json:"name"`
	LastName     *string  `json:"last_name"`
	NationalCode *string  `json:"national_code"`
	PhoneNumber  *string  `json:"phone_number"`
	CarID        *int64   `json:"car_id"`
	LicensePlate *string  `json:"license_plate"`
	CapacityTon  *float64 `json:"capacity_ton"`
}

func (s *DriverService) Create(ctx context.Context, req *CreateDriverRequest) (*repository.DriverRow, error) {
	if _, err := s.cars.FindByID(ctx, req.CarID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("Car not found")
		}
		return nil, err
	}

	taken, err := s.repo.IdentityTaken(ctx, req.NationalCode, req.PhoneNumber, 0)
	if err != nil {
		return nil, fmt.Errorf("check driver identity: %w", err)
	}
	if taken {
		return nil, repository.Conflictf("Driver with this national code or phone number already exists")
	}

	driver := &entity.Driver{
		Name:         req.Name,
		LastName:     req.LastName,
		NationalCode: req.NationalCode,
		PhoneNumber:  req.PhoneNumber,
		CarID:        req.CarID,
		LicensePlate: req.LicensePlate,
		CapacityTon:  req.CapacityTon,
	}
	if err := s.repo.Create(ctx, driver); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, driver.ID)
}

func (s *DriverService) Get(ctx context.Context, id int64) (*repository.DriverRow, error) {
	row, err := s.repo.GetRow(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("Driver not found")
		}
		return nil, err
	}
	return row, nil
}

func (s *DriverService) Update(ctx context.Context, id int64, req *UpdateDriverRequest) (*repository.DriverRow, error) {
	driver, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("Driver not found")
		}
		return nil, err
	}

	if req.Name != nil {
		driver.Name = *req.Name
	}
	if req.LastName != nil {
		driver.LastName = *req.LastName
	}
	if req.NationalCode != nil {
		driver.NationalCode = *req.NationalCode
	}
	if req.PhoneNumber != nil {
		driver.PhoneNumber = *req.PhoneNumber
	}
	if req.CarID != nil {
		if _, err := s.cars.FindByID(ctx, *req.CarID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, repository.NotFoundf("Car not found")
			}
			return nil, err
		}
		driver.CarID = *req.CarID
	}
	if req.LicensePlate != nil {
		driver.LicensePlate = *req.LicensePlate
	}
	if req.CapacityTon != nil {
		driver.CapacityTon = *req.CapacityTon
	}

	if req.NationalCode != nil || req.PhoneNumber != nil {
		taken, err := s.repo.IdentityTaken(ctx, driver.NationalCode, driver.PhoneNumber, id)
		if err != nil {
			return nil, fmt.Errorf("check driver identity: %w", err)
		}
		if taken {
			return nil, repository.Conflictf("Driver with this national code or phone number already exists")
		}
	}

	if err := s.repo.Update(ctx, driver); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, id)
}

func (s *DriverService) List(ctx context.Context, q repository.ListQuery, carID int64) (*repository.Page[repository.DriverRow], error) {
	return s.repo.List(ctx, q, carID)
}

// Delete removes a driver and returns the first and last name for the
// confirmation message.
func (s *DriverService) Delete(ctx context.Context, id int64) (string, string, error) {
	driver, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", repository.NotFoundf("Driver not found")
		}
		return "", "", err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", "", err
	}
	return driver.Name, driver.LastName, nil
}
