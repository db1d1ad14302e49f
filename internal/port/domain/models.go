// Package domain contains core types for the port reference data.
package domain

import (
	"errors"
	"time"
)

// Port is immutable reference data identified by its code. Rows are created
// and updated only through administrative imports and CRUD, never by the
// quoting path.
type Port struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Code      string    `json:"code" gorm:"type:varchar(10);not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Country   string    `json:"country" gorm:"type:varchar(50);not null"`
	Region    string    `json:"region" gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Port) TableName() string { return "ports" }

var (
	ErrInvalidCode    = errors.New("invalid_code")
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidCountry = errors.New("invalid_country")
	ErrDuplicateCode  = errors.New("duplicate_code")
	ErrNotFound       = errors.New("not_found")
)
