package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Taxonomy sentinels. Services wrap these with resource-specific messages
// via NotFoundf/Conflictf; handlers map them to 404/409.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("conflict")
)

type taggedError struct {
	kind error
	msg  string
}

func (e *taggedError) Error() string { return e.msg }

func (e *taggedError) Unwrap() error { return e.kind }

// NotFoundf builds a caller-facing message that satisfies
// errors.Is(err, ErrNotFound).
func NotFoundf(format string, args ...interface{}) error {
	return &taggedError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Conflictf builds a caller-facing message that satisfies
// errors.Is(err, ErrConflict).
func Conflictf(format string, args ...interface{}) error {
	return &taggedError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// Repositories bundles every table repository behind one constructor.
type Repositories struct {
	Province         *ProvinceRepository
	City             *CityRepository
	Village          *VillageRepository
	MeasureUnit      *MeasureUnitRepository
	Seed             *SeedRepository
	Pesticide        *PesticideRepository
	Factory          *FactoryRepository
	CropYear         *CropYearRepository
	FactorySeed      *FactorySeedRepository
	FactoryPesticide *FactoryPesticideRepository
	Car              *CarRepository
	Driver           *DriverRepository
	Role             *RoleRepository
	User             *UserRepository
}

// NewRepositories wires all repositories onto one gorm handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Province:         NewProvinceRepository(db),
		City:             NewCityRepository(db),
		Village:          NewVillageRepository(db),
		MeasureUnit:      NewMeasureUnitRepository(db),
		Seed:             NewSeedRepository(db),
		Pesticide:        NewPesticideRepository(db),
		Factory:          NewFactoryRepository(db),
		CropYear:         NewCropYearRepository(db),
		FactorySeed:      NewFactorySeedRepository(db),
		FactoryPesticide: NewFactoryPesticideRepository(db),
		Car:              NewCarRepository(db),
		Driver:           NewDriverRepository(db),
		Role:             NewRoleRepository(db),
		User:             NewUserRepository(db),
	}
}
