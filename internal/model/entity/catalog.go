package entity

import "time"

// MeasureUnit is the unit a seed or pesticide amount is expressed in.
type MeasureUnit struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UnitName  string    `json:"unit_name" gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Seeds      []Seed      `json:"-" gorm:"foreignKey:MeasureUnitID"`
	Pesticides []Pesticide `json:"-" gorm:"foreignKey:MeasureUnitID"`
}

func (MeasureUnit) TableName() string {
	return "measure_units"
}

// Seed is a catalog entry for a seed variety.
type Seed struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SeedName      string    `json:"seed_name" gorm:"size:150;not null;uniqueIndex"`
	MeasureUnitID int64     `json:"measure_unit_id" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	MeasureUnit *MeasureUnit `json:"-" gorm:"foreignKey:MeasureUnitID;constraint:OnDelete:RESTRICT"`
}

func (Seed) TableName() string {
	return "seeds"
}

// Pesticide is a catalog entry for a pesticide product.
type Pesticide struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PesticideName string    `json:"pesticide_name" gorm:"size:150;not null;uniqueIndex"`
	MeasureUnitID int64     `json:"measure_unit_id" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	MeasureUnit *MeasureUnit `json:"-" gorm:"foreignKey:MeasureUnitID;constraint:OnDelete:RESTRICT"`
}

func (Pesticide) TableName() string {
	return "pesticides"
}
