package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, route *Route) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Route, error)
	FindByPorts(ctx context.Context, db *gorm.DB, originPortID, destinationPortID int64) (*Route, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Route, error)
}
