package repository

import (
	"context"
	"errors"

	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"gorm.io/gorm"
)

// ProvinceRepository owns the provinces table.
type ProvinceRepository struct {
	db *gorm.DB
}

func NewProvinceRepository(db *gorm.DB) *ProvinceRepository {
	return &ProvinceRepository{db: db}
}

var provinceSorts = map[string]string{
	"id":         "id",
	"province":   "province",
	"created_at": "created_at",
}

func (r *ProvinceRepository) FindByID(ctx context.Context, id int64) (*entity.Province, error) {
	var province entity.Province
	err := r.db.WithContext(ctx).First(&province, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &province, nil
}

// NameTaken probes for another province with the same name.
func (r *ProvinceRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&entity.Province{}).Where("province = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *ProvinceRepository) Create(ctx context.Context, province *entity.Province) error {
	return r.db.WithContext(ctx).Create(province).Error
}

func (r *ProvinceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.Province{}, id).Error
}

func (r *ProvinceRepository) List(ctx context.Context, q ListQuery) (*Page[entity.Province], error) {
	query := r.db.WithContext(ctx).Model(&entity.Province{})
	query = applySearch(query, q.Search, "province")
	order := OrderClause(provinceSorts, q.SortBy, q.SortOrder, "")
	return Paginate[entity.Province](query, "", order, q.Page, q.Size)
}

// CityRepository owns the cities table.
type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

var citySorts = map[string]string{
	"id":          "id",
	"city":        "city",
	"created_at":  "created_at",
	"province_id": "province_id",
}

func (r *CityRepository) FindByID(ctx context.Context, id int64) (*entity.City, error) {
	var city entity.City
	err := r.db.WithContext(ctx).First(&city, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &city, nil
}

// NameTaken checks uniqueness of the city name within one province.
func (r *CityRepository) NameTaken(ctx context.Context, name string, provinceID, excludeID int64) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&entity.City{}).
		Where("city = ? AND province_id = ?", name, provinceID)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *CityRepository) Create(ctx context.Context, city *entity.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *CityRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.City{}, id).Error
}

func (r *CityRepository) List(ctx context.Context, q ListQuery, provinceID int64) (*Page[entity.City], error) {
	query := r.db.WithContext(ctx).Model(&entity.City{})
	if provinceID > 0 {
		query = query.Where("province_id = ?", provinceID)
	}
	query = applySearch(query, q.Search, "city")
	order := OrderClause(citySorts, q.SortBy, q.SortOrder, "")
	return Paginate[entity.City](query, "", order, q.Page, q.Size)
}

// VillageRepository owns the villages table.
type VillageRepository struct {
	db *gorm.DB
}

func NewVillageRepository(db *gorm.DB) *VillageRepository {
	return &VillageRepository{db: db}
}

var villageSorts = map[string]string{
	"id":         "id",
	"village":    "village",
	"created_at": "created_at",
	"city_id":    "city_id",
}

func (r *VillageRepository) FindByID(ctx context.Context, id int64) (*entity.Village, error) {
	var village entity.Village
	err := r.db.WithContext(ctx).First(&village, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &village, nil
}

// NameTaken checks uniqueness of the village name within one city.
func (r *VillageRepository) NameTaken(ctx context.Context, name string, cityID, excludeID int64) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&entity.Village{}).
		Where("village = ? AND city_id = ?", name, cityID)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *VillageRepository) Create(ctx context.Context, village *entity.Village) error {
	return r.db.WithContext(ctx).Create(village).Error
}

func (r *VillageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.Village{}, id).Error
}

func (r *VillageRepository) List(ctx context.Context, q ListQuery, cityID int64) (*Page[entity.Village], error) {
	query := r.db.WithContext(ctx).Model(&entity.Village{})
	if cityID > 0 {
		query = query.Where("city_id = ?", cityID)
	}
	query = applySearch(query, q.Search, "village")
	order := OrderClause(villageSorts, q.SortBy, q.SortOrder, "")
	return Paginate[entity.Village](query, "", order, q.Page, q.Size)
}
