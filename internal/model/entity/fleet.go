package entity

import "time"

// Car is a vehicle model/type drivers are assigned to.
type Car struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Drivers []Driver `json:"-" gorm:"foreignKey:CarID"`
}

func (Car) TableName() string {
	return "cars"
}

// Driver is a haulage driver. National code and phone number identify a
// person uniquely.
type Driver struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	LastName     string    `json:"last_name" gorm:"size:100;not null"`
	NationalCode string    `json:"national_code" gorm:"size:10;not null;uniqueIndex"`
	PhoneNumber  string    `json:"phone_number" gorm:"size:11;not null;uniqueIndex"`
	CarID        int64     `json:"car_id" gorm:"not null"`
	LicensePlate string    `json:"license_plate" gorm:"size:20;not null"`
	CapacityTon  float64   `json:"capacity_ton" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Car *Car `json:"-" gorm:"foreignKey:CarID;constraint:OnDelete:RESTRICT"`
}

func (Driver) TableName() string {
	return "drivers"
}
