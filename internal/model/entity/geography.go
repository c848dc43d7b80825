package entity

import "time"

// Province is the top of the geography hierarchy.
type Province struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Province  string    `json:"province" gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`

	Cities []City `json:"-" gorm:"foreignKey:ProvinceID"`
}

func (Province) TableName() string {
	return "provinces"
}

// City belongs to a province; the city name is unique within it.
type City struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	City       string    `json:"city" gorm:"size:100;not null;uniqueIndex:ux_cities_city_province"`
	ProvinceID int64     `json:"province_id" gorm:"not null;uniqueIndex:ux_cities_city_province"`
	CreatedAt  time.Time `json:"created_at"`

	Province *Province `json:"-" gorm:"foreignKey:ProvinceID;constraint:OnDelete:RESTRICT"`
	Villages []Village `json:"-" gorm:"foreignKey:CityID"`
}

func (City) TableName() string {
	return "cities"
}

// Village belongs to a city; the village name is unique within it.
type Village struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Village   string    `json:"village" gorm:"size:100;not null;uniqueIndex:ux_villages_village_city"`
	CityID    int64     `json:"city_id" gorm:"not null;uniqueIndex:ux_villages_village_city"`
	CreatedAt time.Time `json:"created_at"`

	City *City `json:"-" gorm:"foreignKey:CityID;constraint:OnDelete:RESTRICT"`
}

func (Village) TableName() string {
	return "villages"
}
