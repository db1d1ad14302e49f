// Package domain contains core types for tariff rates and surcharges.
package domain

import (
	"errors"
	"time"
)

// BaseRate is a priced, time-bounded tariff for a (route, container type)
// pair. The effective window is [EffectiveDate, ExpiryDate]; a nil expiry
// means open-ended. Several rates may overlap in time; resolution picks the
// one with the latest effective date.
type BaseRate struct {
	ID              int64      `json:"id" gorm:"primaryKey"`
	RouteID         int64      `json:"route_id" gorm:"not null;index"`
	ContainerTypeID int64      `json:"container_type_id" gorm:"not null;index"`
	Price           float64    `json:"price" gorm:"not null"`
	Currency        string     `json:"currency" gorm:"type:char(3);not null;default:'USD'"`
	EffectiveDate   time.Time  `json:"effective_date" gorm:"type:date;not null"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty" gorm:"type:date"`
	CreatedAt       time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (BaseRate) TableName() string { return "base_rates" }

// Surcharge is a named extra charge that can be attached to rates.
type Surcharge struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	Code        string  `json:"code" gorm:"type:varchar(10);not null;uniqueIndex"`
	Name        string  `json:"name" gorm:"type:varchar(50);not null"`
	Description *string `json:"description,omitempty" gorm:"type:varchar(200)"`
}

func (Surcharge) TableName() string { return "surcharges" }

// RateSurcharge links a surcharge to a base rate as either a fixed amount
// or a percentage of the base price. A nil currency means the base rate's
// currency applies.
type RateSurcharge struct {
	ID          int64    `json:"id" gorm:"primaryKey"`
	RateID      int64    `json:"rate_id" gorm:"not null;index"`
	SurchargeID int64    `json:"surcharge_id" gorm:"not null"`
	Amount      *float64 `json:"amount,omitempty"`
	Percentage  *float64 `json:"percentage,omitempty"`
	Currency    *string  `json:"currency,omitempty" gorm:"type:char(3)"`
}

func (RateSurcharge) TableName() string { return "rate_surcharges" }

var (
	ErrInvalidRoute         = errors.New("invalid_route")
	ErrInvalidContainerType = errors.New("invalid_container_type")
	ErrInvalidPrice         = errors.New("invalid_price")
	ErrInvalidCurrency      = errors.New("invalid_currency")
	ErrInvalidEffectiveDate = errors.New("invalid_effective_date")
	ErrNotFound             = errors.New("rate_not_found")
)
