// Package model holds the GORM table mappings.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. NULL emails are allowed and never collide.
type UserModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Email     *string `gorm:"type:varchar(255);uniqueIndex:idx_users_email"`
	Phone     string  `gorm:"type:varchar(64);not null"`
	AddressID int64   `gorm:"not null;index:idx_users_address_id"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All lists every table mapping in dependency order, for AutoMigrate.
func All() []any {
	return []any{&AddressModel{}, &UserModel{}}
}
