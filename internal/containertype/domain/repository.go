package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, ct *ContainerType) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*ContainerType, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*ContainerType, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]ContainerType, error)
}
