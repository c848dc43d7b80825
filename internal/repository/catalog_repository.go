package repository

import (
	"context"
	"errors"
	"time"

	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"gorm.io/gorm"
)

// MeasureUnitRepository owns the measure_units table.
type MeasureUnitRepository struct {
	db *gorm.DB
}

func NewMeasureUnitRepository(db *gorm.DB) *MeasureUnitRepository {
	return &MeasureUnitRepository{db: db}
}

var measureUnitSorts = map[string]string{
	"id":         "id",
	"unit_name":  "unit_name",
	"created_at": "created_at",
}

func (r *MeasureUnitRepository) FindByID(ctx context.Context, id int64) (*entity.MeasureUnit, error) {
	var unit entity.MeasureUnit
	err := r.db.WithContext(ctx).First(&unit, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

func (r *MeasureUnitRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&entity.MeasureUnit{}).Where("unit_name = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *MeasureUnitRepository) Create(ctx context.Context, unit *entity.MeasureUnit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

func (r *MeasureUnitRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.MeasureUnit{}, id).Error
}

func (r *MeasureUnitRepository) List(ctx context.Context, q ListQuery) (*Page[entity.MeasureUnit], error) {
	query := r.db.WithContext(ctx).Model(&entity.MeasureUnit{})
	query = applySearch(query, q.Search, "unit_name")
	order := OrderClause(measureUnitSorts, q.SortBy, q.SortOrder, "")
	return Paginate[entity.MeasureUnit](query, "", order, q.Page, q.Size)
}

// SeedRow is the flat projection returned by seed list/detail endpoints:
// the seed joined with its measure unit's display name.
type SeedRow struct {
	ID            int64     `json:"id"`
	SeedName      string    `json:"seed_name"`
	MeasureUnitID int64     `json:"measure_unit_id"`
	UnitName      string    `json:"unit_name"`
	CreatedAt     time.Time `json:"created_at"`
}

const seedRowSelect = "seeds.id, seeds.seed_name, seeds.measure_unit_id, seeds.created_at, measure_units.unit_name AS unit_name"

// SeedRepository owns the seeds table.
type SeedRepository struct {
	db *gorm.DB
}

func NewSeedRepository(db *gorm.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

var seedSorts = map[string]string{
	"id":         "seeds.id",
	"seed_name":  "seeds.seed_name",
	"created_at": "seeds.created_at",
}

func (r *SeedRepository) FindByID(ctx context.Context, id int64) (*entity.Seed, error) {
	var seed entity.Seed
	err := r.db.WithContext(ctx).First(&seed, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &seed, nil
}

func (r *SeedRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&entity.Seed{}).Where("seed_name = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *SeedRepository) Create(ctx context.Context, seed *entity.Seed) error {
	return r.db.WithContext(ctx).Create(seed).Error
}

func (r *SeedRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.Seed{}, id).Error
}

func (r *SeedRepository) rowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&entity.Seed{}).
		Joins("JOIN measure_units ON measure_units.id = seeds.measure_unit_id")
}

// GetRow fetches one seed flattened with its unit name.
func (r *SeedRepository) GetRow(ctx context.Context, id int64) (*SeedRow, error) {
	var row SeedRow
	err := r.rowQuery(ctx).Select(seedRowSelect).Where("seeds.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *SeedRepository) List(ctx context.Context, q ListQuery, measureUnitID int64) (*Page[SeedRow], error) {
	query := r.rowQuery(ctx)
	if measureUnitID > 0 {
		query = query.Where("seeds.measure_unit_id = ?", measureUnitID)
	}
	query = applySearch(query, q.Search, "seeds.seed_name")
	order := OrderClause(seedSorts, q.SortBy, q.SortOrder, "")
	return Paginate[SeedRow](query, seedRowSelect, order, q.Page, q.Size)
}

// PesticideRow mirrors SeedRow for the pesticides catalog.
type PesticideRow struct {
	ID            int64     `json:"id"`
	PesticideName string    `json:"pesticide_name"`
	MeasureUnitID int64     `json:"measure_unit_id"`
	UnitName      string    `json:"unit_name"`
	CreatedAt     time.Time `json:"created_at"`
}

const pesticideRowSelect = "pesticides.id, pesticides.pesticide_name, pesticides.measure_unit_id, pesticides.created_at, measure_units.unit_name AS unit_name"

// PesticideRepository owns the pesticides table.
type PesticideRepository struct {
	db *gorm.DB
}

func NewPesticideRepository(db *gorm.DB) *PesticideRepository {
	return &PesticideRepository{db: db}
}

var pesticideSorts = map[string]string{
	"id":             "pesticides.id",
	"pesticide_name": "pesticides.pesticide_name",
	"created_at":     "pesticides.created_at",
}

func (r *PesticideRepository) FindByID(ctx context.Context, id int64) (*entity.Pesticide, error) {
	var pesticide entity.Pesticide
	err := r.db.WithContext(ctx).First(&pesticide, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pesticide, nil
}

func (r *PesticideRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&entity.Pesticide{}).Where("pesticide_name = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *PesticideRepository) Create(ctx context.Context, pesticide *entity.Pesticide) error {
	return r.db.WithContext(ctx).Create(pesticide).Error
}

func (r *PesticideRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.Pesticide{}, id).Error
}

func (r *PesticideRepository) rowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&entity.Pesticide{}).
		Joins("JOIN measure_units ON measure_units.id = pesticides.measure_unit_id")
}

func (r *PesticideRepository) GetRow(ctx context.Context, id int64) (*PesticideRow, error) {
	var row PesticideRow
	err := r.rowQuery(ctx).Select(pesticideRowSelect).Where("pesticides.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *PesticideRepository) List(ctx context.Context, q ListQuery, measureUnitID int64) (*Page[PesticideRow], error) {
	query := r.rowQuery(ctx)
	if measureUnitID > 0 {
		query = query.Where("pesticides.measure_unit_id = ?", measureUnitID)
	}
	query = applySearch(query, q.Search, "pesticides.pesticide_name")
	order := OrderClause(pesticideSorts, q.SortBy, q.SortOrder, "")
	return Paginate[PesticideRow](query, pesticideRowSelect, order, q.Page, q.Size)
}
