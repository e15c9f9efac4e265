package model

import (
	"time"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// The coordinate pair is unique; the index is the final arbiter of concurrent creates and moves.
type AddressModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Door      *string `gorm:"type:varchar(255)"`
	Street    string  `gorm:"type:varchar(255);not null"`
	City      string  `gorm:"type:varchar(255);not null"`
	State     string  `gorm:"type:varchar(255);not null"`
	Country   string  `gorm:"type:varchar(255);not null"`
	Zip       string  `gorm:"type:varchar(32);not null"`
	Latitude  float64 `gorm:"type:double precision;not null;uniqueIndex:idx_addresses_coordinates,priority:1"`
	Longitude float64 `gorm:"type:double precision;not null;uniqueIndex:idx_addresses_coordinates,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Only declares the users.address_id foreign key; never loaded.
	Users []UserModel `gorm:"foreignKey:AddressID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
