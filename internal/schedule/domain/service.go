package domain

import (
	"context"
	"time"
)

type Service interface {
	// Upsert creates a sailing, or updates route and dates when a sailing
	// with the same (vessel, voyage, departure date) already exists.
	Upsert(ctx context.Context, req UpsertRequest) (*VesselSchedule, error)
	Upcoming(ctx context.Context, routeID int64, from, to time.Time, limit int) ([]VesselSchedule, error)
	Latest(ctx context.Context, limit int) ([]VesselSchedule, error)
	Count(ctx context.Context) (int64, error)
}

type UpsertRequest struct {
	RouteID       int64     `json:"route_id"`
	VesselName    string    `json:"vessel_name"`
	Voyage        string    `json:"voyage"`
	DepartureDate time.Time `json:"departure_date"`
	ArrivalDate   time.Time `json:"arrival_date"`
}
