package service

import (
	"github.com/haghnazari/Havirkesht/internal/config"
	"github.com/haghnazari/Havirkesht/internal/repository"
)

// Services bundles all domain services behind one constructor.
type Services struct {
	Province         *ProvinceService
	City             *CityService
	Village          *VillageService
	MeasureUnit      *MeasureUnitService
	Seed             *SeedService
	Pesticide        *PesticideService
	Factory          *FactoryService
	CropYear         *CropYearService
	FactorySeed      *FactorySeedService
	FactoryPesticide *FactoryPesticideService
	Car              *CarService
	Driver           *DriverService
	User             *UserService
	Auth             *AuthService
}

// NewServices wires services onto the repositories; the token store
// backs the auth refresh tokens only.
func NewServices(repos *repository.Repositories, tokens TokenStore, cfg *config.Config) *Services {
	userSvc := NewUserService(repos.User, repos.Role)
	return &Services{
		Province:         NewProvinceService(repos.Province),
		City:             NewCityService(repos.City, repos.Province),
		Village:          NewVillageService(repos.Village, repos.City),
		MeasureUnit:      NewMeasureUnitService(repos.MeasureUnit),
		Seed:             NewSeedService(repos.Seed, repos.MeasureUnit),
		Pesticide:        NewPesticideService(repos.Pesticide, repos.MeasureUnit),
		Factory:          NewFactoryService(repos.Factory),
		CropYear:         NewCropYearService(repos.CropYear),
		FactorySeed:      NewFactorySeedService(repos.FactorySeed, repos.Factory, repos.Seed, repos.CropYear),
		FactoryPesticide: NewFactoryPesticideService(repos.FactoryPesticide, repos.Factory, repos.Pesticide, repos.CropYear),
		Car:              NewCarService(repos.Car),
		Driver:           NewDriverService(repos.Driver, repos.Car),
		User:             userSvc,
		Auth:             NewAuthService(repos.User, repos.Role, tokens, cfg),
	}
}
