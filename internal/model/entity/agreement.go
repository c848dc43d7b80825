package entity

import "time"

// FactorySeed is a pricing agreement row between a factory and a seed
// supplier for one crop year. One row per (factory, seed, crop year).
type FactorySeed struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FactoryID    int64     `json:"factory_id" gorm:"not null;uniqueIndex:ux_factory_seed"`
	SeedID       int64     `json:"seed_id" gorm:"not null;uniqueIndex:ux_factory_seed"`
	CropYearID   int64     `json:"crop_year_id" gorm:"not null;uniqueIndex:ux_factory_seed"`
	Amount       float64   `json:"amount" gorm:"not null"`
	FarmerPrice  float64   `json:"farmer_price" gorm:"not null"`
	FactoryPrice float64   `json:"factory_price" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Factory  *Factory  `json:"-" gorm:"foreignKey:FactoryID;constraint:OnDelete:RESTRICT"`
	Seed     *Seed     `json:"-" gorm:"foreignKey:SeedID;constraint:OnDelete:RESTRICT"`
	CropYear *CropYear `json:"-" gorm:"foreignKey:CropYearID;constraint:OnDelete:RESTRICT"`
}

func (FactorySeed) TableName() string {
	return "factory_seeds"
}

// FactoryPesticide mirrors FactorySeed for pesticide agreements.
type FactoryPesticide struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FactoryID    int64     `json:"factory_id" gorm:"not null;uniqueIndex:ux_factory_pesticide"`
	PesticideID  int64     `json:"pesticide_id" gorm:"not null;uniqueIndex:ux_factory_pesticide"`
	CropYearID   int64     `json:"crop_year_id" gorm:"not null;uniqueIndex:ux_factory_pesticide"`
	Amount       float64   `json:"amount" gorm:"not null"`
	FarmerPrice  float64   `json:"farmer_price" gorm:"not null"`
	FactoryPrice float64   `json:"factory_price" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Factory   *Factory   `json:"-" gorm:"foreignKey:FactoryID;constraint:OnDelete:RESTRICT"`
	Pesticide *Pesticide `json:"-" gorm:"foreignKey:PesticideID;constraint:OnDelete:RESTRICT"`
	CropYear  *CropYear  `json:"-" gorm:"foreignKey:CropYearID;constraint:OnDelete:RESTRICT"`
}

func (FactoryPesticide) TableName() string {
	return "factory_pesticides"
}
