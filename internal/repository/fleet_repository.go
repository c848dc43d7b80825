package repository

import (
	"context"
	"errors"
	"time"

	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"gorm.io/gorm"
)

// CarRepository owns the cars table.
type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

var carSorts = map[string]string{
	"id":         "id",
	"name":       "name",
	"created_at": "created_at",
}

func (r *CarRepository) FindByID(ctx context.Context, id int64) (*entity.Car, error) {
	var car entity.Car
	err := r.db.WithContext(ctx).First(&car, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &car, nil
}

func (r *CarRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&entity.Car{}).Where("name = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *CarRepository) Create(ctx context.Context, car *entity.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *CarRepository) Update(ctx context.Context, car *entity.Car) error {
	return r.db.WithContext(ctx).Save(car).Error
}

func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.Car{}, id).Error
}

func (r *CarRepository) List(ctx context.Context, q ListQuery) (*Page[entity.Car], error) {
	query := r.db.WithContext(ctx).Model(&entity.Car{})
	query = applySearch(query, q.Search, "name")
	order := OrderClause(carSorts, q.SortBy, q.SortOrder, "")
	return Paginate[entity.Car](query, "", order, q.Page, q.Size)
}

// DriverRow flattens a driver with the assigned car's display name.
type DriverRow struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	LastName     string    `json:"last_name"`
	NationalCode string    `json:"national_code"`
	PhoneNumber  string    `json:"phone_number"`
	CarID        int64     `json:"car_id"`
	LicensePlate string    `json:"license_plate"`
	CapacityTon  float64   `json:"capacity_ton"`
	CreatedAt    time.Time `json:"created_at"`
	CarName      string    `json:"car_name"`
}

const driverRowSelect = "drivers.id, drivers.name, drivers.last_name, drivers.national_code, " +
	"drivers.phone_number, drivers.car_id, drivers.license_plate, drivers.capacity_ton, " +
	"drivers.created_at, cars.name AS car_name"

// DriverRepository owns the drivers table.
type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

var driverSorts = map[string]string{
	"id":         "drivers.id",
	"name":       "drivers.name",
	"last_name":  "drivers.last_name",
	"created_at": "drivers.created_at",
}

func (r *DriverRepository) FindByID(ctx context.Context, id int64) (*entity.Driver, error) {
	var driver entity.Driver
	err := r.db.WithContext(ctx).First(&driver, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &driver, nil
}

// IdentityTaken probes national code and phone number uniqueness in one
// round trip.
func (r *DriverRepository) IdentityTaken(ctx context.Context, nationalCode, phoneNumber string, excludeID int64) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&entity.Driver{}).
		Where("(national_code = ? OR phone_number = ?)", nationalCode, phoneNumber)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *DriverRepository) Create(ctx context.Context, driver *entity.Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

func (r *DriverRepository) Update(ctx context.Context, driver *entity.Driver) error {
	return r.db.WithContext(ctx).Save(driver).Error
}

func (r *DriverRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.Driver{}, id).Error
}

func (r *DriverRepository) rowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&entity.Driver{}).
		Joins("JOIN cars ON cars.id = drivers.car_id")
}

func (r *DriverRepository) GetRow(ctx context.Context, id int64) (*DriverRow, error) {
	var row DriverRow
	err := r.rowQuery(ctx).Select(driverRowSelect).Where("drivers.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *DriverRepository) List(ctx context.Context, q ListQuery, carID int64) (*Page[DriverRow], error) {
	query := r.rowQuery(ctx)
	if carID > 0 {
		query = query.Where("drivers.car_id = ?", carID)
	}
	query = applySearch(query, q.Search,
		"drivers.name", "drivers.last_name", "drivers.national_code", "drivers.phone_number")
	order := OrderClause(driverSorts, q.SortBy, q.SortOrder, "")
	return Paginate[DriverRow](query, driverRowSelect, order, q.Page, q.Size)
}
