// Package domain contains core types for container-type reference data.
package domain

import (
	"errors"
	"time"
)

// ContainerType shares the Port lifecycle: administrative writes only.
type ContainerType struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Code        string    `json:"code" gorm:"type:varchar(10);not null;uniqueIndex"`
	Name        string    `json:"name" gorm:"type:varchar(50);not null"`
	Size        string    `json:"size" gorm:"type:varchar(20);not null"`
	Description *string   `json:"description,omitempty" gorm:"type:varchar(200)"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ContainerType) TableName() string { return "container_types" }

var (
	ErrInvalidCode   = errors.New("invalid_code")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidSize   = errors.New("invalid_size")
	ErrDuplicateCode = errors.New("duplicate_code")
	ErrNotFound      = errors.New("not_found")
)
