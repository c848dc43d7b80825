package repository

import (
	"context"
	"errors"
	"time"

	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"gorm.io/gorm"
)

// FactorySeedRow flattens an agreement with the display names of all three
// parents; the unit name takes a second hop through the seed.
type FactorySeedRow struct {
	ID           int64     `json:"id"`
	FactoryID    int64     `json:"factory_id"`
	SeedID       int64     `json:"seed_id"`
	CropYearID   int64     `json:"crop_year_id"`
	Amount       float64   `json:"amount"`
	FarmerPrice  float64   `json:"farmer_price"`
	FactoryPrice float64   `json:"factory_price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	FactoryName  string    `json:"factory_name"`
	SeedName     string    `json:"seed_name"`
	UnitName     string    `json:"unit_name"`
	CropYearName string    `json:"crop_year_name"`
}

const factorySeedRowSelect = "factory_seeds.id, factory_seeds.factory_id, factory_seeds.seed_id, " +
	"factory_seeds.crop_year_id, factory_seeds.amount, factory_seeds.farmer_price, " +
	"factory_seeds.factory_price, factory_seeds.created_at, factory_seeds.updated_at, " +
	"factories.factory_name AS factory_name, seeds.seed_name AS seed_name, " +
	"measure_units.unit_name AS unit_name, crop_years.crop_year_name AS crop_year_name"

// FactorySeedRepository owns the factory_seeds agreement table.
type FactorySeedRepository struct {
	db *gorm.DB
}

func NewFactorySeedRepository(db *gorm.DB) *FactorySeedRepository {
	return &FactorySeedRepository{db: db}
}

func (r *FactorySeedRepository) FindByID(ctx context.Context, id int64) (*entity.FactorySeed, error) {
	var agreement entity.FactorySeed
	err := r.db.WithContext(ctx).First(&agreement, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &agreement, nil
}

// ComboTaken probes for another agreement on the same
// (factory, seed, crop year) triple.
func (r *FactorySeedRepository) ComboTaken(ctx context.Context, factoryID, seedID, cropYearID, excludeID int64) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&entity.FactorySeed{}).
		Where("factory_id = ? AND seed_id = ? AND crop_year_id = ?", factoryID, seedID, cropYearID)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *FactorySeedRepository) Create(ctx context.Context, agreement *entity.FactorySeed) error {
	return r.db.WithContext(ctx).Create(agreement).Error
}

func (r *FactorySeedRepository) Update(ctx context.Context, agreement *entity.FactorySeed) error {
	return r.db.WithContext(ctx).Save(agreement).Error
}

func (r *FactorySeedRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.FactorySeed{}, id).Error
}

func (r *FactorySeedRepository) rowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&entity.FactorySeed{}).
		Joins("JOIN factories ON factories.id = factory_seeds.factory_id").
		Joins("JOIN seeds ON seeds.id = factory_seeds.seed_id").
		Joins("JOIN measure_units ON measure_units.id = seeds.measure_unit_id").
		Joins("JOIN crop_years ON crop_years.id = factory_seeds.crop_year_id")
}

func (r *FactorySeedRepository) GetRow(ctx context.Context, id int64) (*FactorySeedRow, error) {
	var row FactorySeedRow
	err := r.rowQuery(ctx).Select(factorySeedRowSelect).Where("factory_seeds.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// AgreementFilter narrows an agreement listing by any of the parents.
type AgreementFilter struct {
	FactoryID  int64
	ProductID  int64 // seed or pesticide id depending on the repository
	CropYearID int64
}

func (r *FactorySeedRepository) List(ctx context.Context, q ListQuery, filter AgreementFilter) (*Page[FactorySeedRow], error) {
	query := r.rowQuery(ctx)
	if filter.FactoryID > 0 {
		query = query.Where("factory_seeds.factory_id = ?", filter.FactoryID)
	}
	if filter.ProductID > 0 {
		query = query.Where("factory_seeds.seed_id = ?", filter.ProductID)
	}
	if filter.CropYearID > 0 {
		query = query.Where("factory_seeds.crop_year_id = ?", filter.CropYearID)
	}
	query = applySearch(query, q.Search,
		"factories.factory_name", "seeds.seed_name", "crop_years.crop_year_name")
	return Paginate[FactorySeedRow](query, factorySeedRowSelect, "", q.Page, q.Size)
}

// FactoryPesticideRow mirrors FactorySeedRow for pesticide agreements.
type FactoryPesticideRow struct {
	ID            int64     `json:"id"`
	FactoryID     int64     `json:"factory_id"`
	PesticideID   int64     `json:"pesticide_id"`
	CropYearID    int64     `json:"crop_year_id"`
	Amount        float64   `json:"amount"`
	FarmerPrice   float64   `json:"farmer_price"`
	FactoryPrice  float64   `json:"factory_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	FactoryName   string    `json:"factory_name"`
	PesticideName string    `json:"pesticide_name"`
	UnitName      string    `json:"unit_name"`
	CropYearName  string    `json:"crop_year_name"`
}

const factoryPesticideRowSelect = "factory_pesticides.id, factory_pesticides.factory_id, " +
	"factory_pesticides.pesticide_id, factory_pesticides.crop_year_id, factory_pesticides.amount, " +
	"factory_pesticides.farmer_price, factory_pesticides.factory_price, " +
	"factory_pesticides.created_at, factory_pesticides.updated_at, " +
	"factories.factory_name AS factory_name, pesticides.pesticide_name AS pesticide_name, " +
	"measure_units.unit_name AS unit_name, crop_years.crop_year_name AS crop_year_name"

// FactoryPesticideRepository owns the factory_pesticides agreement table.
type FactoryPesticideRepository struct {
	db *gorm.DB
}

func NewFactoryPesticideRepository(db *gorm.DB) *FactoryPesticideRepository {
	return &FactoryPesticideRepository{db: db}
}

func (r *FactoryPesticideRepository) FindByID(ctx context.Context, id int64) (*entity.FactoryPesticide, error) {
	var agreement entity.FactoryPesticide
	err := r.db.WithContext(ctx).First(&agreement, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &agreement, nil
}

func (r *FactoryPesticideRepository) ComboTaken(ctx context.Context, factoryID, pesticideID, cropYearID, excludeID int64) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&entity.FactoryPesticide{}).
		Where("factory_id = ? AND pesticide_id = ? AND crop_year_id = ?", factoryID, pesticideID, cropYearID)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *FactoryPesticideRepository) Create(ctx context.Context, agreement *entity.FactoryPesticide) error {
	return r.db.WithContext(ctx).Create(agreement).Error
}

func (r *FactoryPesticideRepository) Update(ctx context.Context, agreement *entity.FactoryPesticide) error {
	return r.db.WithContext(ctx).Save(agreement).Error
}

func (r *FactoryPesticideRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.FactoryPesticide{}, id).Error
}

func (r *FactoryPesticideRepository) rowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&entity.FactoryPesticide{}).
		Joins("JOIN factories ON factories.id = factory_pesticides.factory_id").
		Joins("JOIN pesticides ON pesticides.id = factory_pesticides.pesticide_id").
		Joins("JOIN measure_units ON measure_units.id = pesticides.measure_unit_id").
		Joins("JOIN crop_years ON crop_years.id = factory_pesticides.crop_year_id")
}

func (r *FactoryPesticideRepository) GetRow(ctx context.Context, id int64) (*FactoryPesticideRow, error) {
	var row FactoryPesticideRow
	err := r.rowQuery(ctx).Select(factoryPesticideRowSelect).Where("factory_pesticides.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *FactoryPesticideRepository) List(ctx context.Context, q ListQuery, filter AgreementFilter) (*Page[FactoryPesticideRow], error) {
	query := r.rowQuery(ctx)
	if filter.FactoryID > 0 {
		query = query.Where("factory_pesticides.factory_id = ?", filter.FactoryID)
	}
	if filter.ProductID > 0 {
		query = query.Where("factory_pesticides.pesticide_id = ?", filter.ProductID)
	}
	if filter.CropYearID > 0 {
		query = query.Where("factory_pesticides.crop_year_id = ?", filter.CropYearID)
	}
	query = applySearch(query, q.Search,
		"factories.factory_name", "pesticides.pesticide_name", "crop_years.crop_year_name")
	return Paginate[FactoryPesticideRow](query, factoryPesticideRowSelect, "", q.Page, q.Size)
}
