package entity

import "time"

// Factory is a sugar-beet factory that signs seed/pesticide agreements.
type Factory struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FactoryName string    `json:"factory_name" gorm:"size:255;not null;uniqueIndex"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	FactorySeeds      []FactorySeed      `json:"-" gorm:"foreignKey:FactoryID"`
	FactoryPesticides []FactoryPesticide `json:"-" gorm:"foreignKey:FactoryID"`
}

func (Factory) TableName() string {
	return "factories"
}

// CropYear is the named accounting period agreements are grouped under,
// e.g. a Persian calendar year such as "1404".
type CropYear struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CropYearName string    `json:"crop_year_name" gorm:"size:100;not null;uniqueIndex"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	FactorySeeds      []FactorySeed      `json:"-" gorm:"foreignKey:CropYearID"`
	FactoryPesticides []FactoryPesticide `json:"-" gorm:"foreignKey:CropYearID"`
}

func (CropYear) TableName() string {
	return "crop_years"
}
