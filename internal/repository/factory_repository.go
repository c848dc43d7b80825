package repository

import (
	"context"
	"errors"

	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"gorm.io/gorm"
)

// FactoryRepository owns the factories table.
type FactoryRepository struct {
	db *gorm.DB
}

func NewFactoryRepository(db *gorm.DB) *FactoryRepository {
	return &FactoryRepository{db: db}
}

var factorySorts = map[string]string{
	"id":           "id",
	"factory_name": "factory_name",
	"created_at":   "created_at",
}

func (r *FactoryRepository) FindByID(ctx context.Context, id int64) (*entity.Factory, error) {
	var factory entity.Factory
	err := r.db.WithContext(ctx).First(&factory, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &factory, nil
}

func (r *FactoryRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&entity.Factory{}).Where("factory_name = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *FactoryRepository) Create(ctx context.Context, factory *entity.Factory) error {
	return r.db.WithContext(ctx).Create(factory).Error
}

func (r *FactoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.Factory{}, id).Error
}

func (r *FactoryRepository) List(ctx context.Context, q ListQuery) (*Page[entity.Factory], error) {
	query := r.db.WithContext(ctx).Model(&entity.Factory{})
	query = applySearch(query, q.Search, "factory_name")
	order := OrderClause(factorySorts, q.SortBy, q.SortOrder, "")
	return Paginate[entity.Factory](query, "", order, q.Page, q.Size)
}

// CropYearRepository owns the crop_years table.
type CropYearRepository struct {
	db *gorm.DB
}

func NewCropYearRepository(db *gorm.DB) *CropYearRepository {
	return &CropYearRepository{db: db}
}

// Crop years only expose their name as a sort key; everything else falls
// back to newest-first.
var cropYearSorts = map[string]string{
	"crop_year_name": "crop_year_name",
}

func (r *CropYearRepository) FindByID(ctx context.Context, id int64) (*entity.CropYear, error) {
	var cropYear entity.CropYear
	err := r.db.WithContext(ctx).First(&cropYear, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cropYear, nil
}

func (r *CropYearRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&entity.CropYear{}).Where("crop_year_name = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *CropYearRepository) Create(ctx context.Context, cropYear *entity.CropYear) error {
	return r.db.WithContext(ctx).Create(cropYear).Error
}

func (r *CropYearRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.CropYear{}, id).Error
}

func (r *CropYearRepository) List(ctx context.Context, q ListQuery) (*Page[entity.CropYear], error) {
	query := r.db.WithContext(ctx).Model(&entity.CropYear{})
	query = applySearch(query, q.Search, "crop_year_name")
	order := OrderClause(cropYearSorts, q.SortBy, q.SortOrder, "created_at DESC")
	return Paginate[entity.CropYear](query, "", order, q.Page, q.Size)
}
