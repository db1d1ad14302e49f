package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, port *Port) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Port, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Port, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Port, error)
}
