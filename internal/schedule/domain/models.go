// Package domain contains vessel schedule types.
package domain

import (
	"errors"
	"time"
)

// VesselSchedule is a single sailing on a route. The natural key for
// upserts is (vessel name, voyage, departure date).
type VesselSchedule struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	RouteID       int64     `json:"route_id" gorm:"not null;index"`
	VesselName    string    `json:"vessel_name" gorm:"type:varchar(100);not null"`
	Voyage        string    `json:"voyage" gorm:"type:varchar(20);not null"`
	DepartureDate time.Time `json:"departure_date" gorm:"type:date;not null;index"`
	ArrivalDate   time.Time `json:"arrival_date" gorm:"type:date;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (VesselSchedule) TableName() string { return "vessel_schedules" }

var (
	ErrInvalidRoute     = errors.New("invalid_route")
	ErrInvalidVessel    = errors.New("invalid_vessel")
	ErrInvalidVoyage    = errors.New("invalid_voyage")
	ErrInvalidDeparture = errors.New("invalid_departure_date")
	ErrInvalidArrival   = errors.New("invalid_arrival_date")
)
