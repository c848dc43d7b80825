package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// StringList stores a list of strings as a JSON-encoded text column so the
// same entity works on postgres and the sqlite test store.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return nil
}

// Role ids are stable; the fixed set is seeded at startup.
const (
	RoleAdmin  int64 = 1
	RoleDriver int64 = 2
	RoleFarmer int64 = 3
)

// ScopeAdmin gates every mutating endpoint.
const ScopeAdmin = "admin"

// Role groups users and carries the scopes granted to them.
type Role struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Scopes    StringList `json:"scopes" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Users []User `json:"-" gorm:"foreignKey:RoleID"`
}

func (Role) TableName() string {
	return "roles"
}

// User is an operator account. The password column holds a bcrypt hash and
// is never serialized.
type User struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username    string    `json:"username" gorm:"size:50;not null;uniqueIndex"`
	Password    string    `json:"-" gorm:"column:password;size:255;not null"`
	Fullname    string    `json:"fullname" gorm:"size:150;not null"`
	Email       string    `json:"email" gorm:"size:120;not null;uniqueIndex"`
	PhoneNumber *string   `json:"phone_number" gorm:"size:15;uniqueIndex"`
	Disabled    bool      `json:"disabled" gorm:"not null;default:false"`
	RoleID      int64     `json:"role_id" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Role *Role `json:"-" gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
}

func (User) TableName() string {
	return "users"
}
