package domain

import (
	"context"

	"gorm.io/datatypes"
)

type Service interface {
	Create(ctx context.Context, userID int64, req CreateRequest) (*Booking, error)
	// UpdateStatus moves a booking between pending, confirmed and
	// cancelled. Operators may update any booking; customers may only
	// cancel their own.
	UpdateStatus(ctx context.Context, id int64, status string) (*Booking, error)
	Get(ctx context.Context, id int64) (*Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]Booking, error)
	List(ctx context.Context) ([]Booking, error)
	PendingCount(ctx context.Context) (int64, error)
}

type CreateRequest struct {
	OriginPort      string `json:"origin_port"`
	DestinationPort string `json:"destination_port"`
	ContainerType   string `json:"container_type"`
	// QuoteSnapshot preserves the resolved quote the customer booked
	// against, so later rate changes don't rewrite history.
	QuoteSnapshot datatypes.JSON `json:"quote_snapshot,omitempty"`
}
