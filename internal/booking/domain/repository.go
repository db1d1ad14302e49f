package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, booking *Booking) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status string) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Booking, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID int64) ([]Booking, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Booking, error)
	CountByStatus(ctx context.Context, db *gorm.DB, status string) (int64, error)
}
