package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, sched *VesselSchedule) error
	Update(ctx context.Context, db *gorm.DB, sched *VesselSchedule) error
	FindByNaturalKey(ctx context.Context, db *gorm.DB, vesselName, voyage string, departureDate time.Time) (*VesselSchedule, error)
	// FindUpcoming returns sailings on a route with departure dates inside
	// [from, to], ordered by departure date ascending, at most limit rows.
	FindUpcoming(ctx context.Context, db *gorm.DB, routeID int64, from, to time.Time, limit int) ([]VesselSchedule, error)
	FindLatest(ctx context.Context, db *gorm.DB, limit int) ([]VesselSchedule, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
