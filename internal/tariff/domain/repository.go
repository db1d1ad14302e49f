package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, rate *BaseRate) error
	Update(ctx context.Context, db *gorm.DB, rate *BaseRate) error
	// FindEffective returns the rate whose effective window contains asOf,
	// preferring the latest effective date; ties break on the highest id.
	FindEffective(ctx context.Context, db *gorm.DB, routeID, containerTypeID int64, asOf time.Time) (*BaseRate, error)
	// FindByNaturalKey locates a rate by its import identity
	// (route, container type, effective date).
	FindByNaturalKey(ctx context.Context, db *gorm.DB, routeID, containerTypeID int64, effectiveDate time.Time) (*BaseRate, error)
	FindLatest(ctx context.Context, db *gorm.DB, limit int) ([]BaseRate, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	FindSurcharges(ctx context.Context, db *gorm.DB, rateID int64) ([]RateSurcharge, error)
}
