package domain

import (
	"context"
	"time"
)

type Service interface {
	// Upsert creates a base rate, or updates price, currency and expiry
	// when a rate with the same (route, container type, effective date)
	// already exists.
	Upsert(ctx context.Context, req UpsertRequest) (*BaseRate, error)
	Effective(ctx context.Context, routeID, containerTypeID int64, asOf time.Time) (*BaseRate, error)
	Latest(ctx context.Context, limit int) ([]BaseRate, error)
	Count(ctx context.Context) (int64, error)
	Surcharges(ctx context.Context, rateID int64) ([]RateSurcharge, error)
}

type UpsertRequest struct {
	RouteID         int64      `json:"route_id"`
	ContainerTypeID int64      `json:"container_type_id"`
	Price           float64    `json:"price"`
	Currency        string     `json:"currency"`
	EffectiveDate   time.Time  `json:"effective_date"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
}
