// Package domain contains booking types.
package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is a customer's shipment request. Port and container names are
// captured as text at booking time so the record survives reference-data
// edits.
type Booking struct {
	ID              int64          `json:"id" gorm:"primaryKey"`
	Reference       string         `json:"reference" gorm:"type:varchar(30);not null;uniqueIndex"`
	UserID          int64          `json:"user_id" gorm:"not null;index"`
	OriginPort      string         `json:"origin_port" gorm:"type:varchar(100);not null"`
	DestinationPort string         `json:"destination_port" gorm:"type:varchar(100);not null"`
	ContainerType   string         `json:"container_type" gorm:"type:varchar(50);not null"`
	Status          string         `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	QuoteSnapshot   datatypes.JSON `json:"quote_snapshot,omitempty"`
	BookingDate     time.Time      `json:"booking_date" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Booking) TableName() string { return "bookings" }

var (
	ErrInvalidOrigin        = errors.New("invalid_origin")
	ErrInvalidDestination   = errors.New("invalid_destination")
	ErrInvalidContainerType = errors.New("invalid_container_type")
	ErrInvalidStatus        = errors.New("invalid_status")
	ErrNotFound             = errors.New("booking_not_found")
)
