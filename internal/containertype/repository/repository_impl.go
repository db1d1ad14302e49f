package repository

import (
	"context"

	"github.com/harborline/seaquote/internal/containertype/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, ct *domain.ContainerType) error {
	return db.WithContext(ctx).Create(ct).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.ContainerType, error) {
	var ct domain.ContainerType
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, size, description, created_at, updated_at
		 FROM container_types WHERE id = ?`,
		id,
	).Scan(&ct).Error
	if err != nil {
		return nil, err
	}
	if ct.ID == 0 {
		return nil, nil
	}
	return &ct, nil
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.ContainerType, error) {
	var ct domain.ContainerType
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, size, description, created_at, updated_at
		 FROM container_types WHERE code = ?`,
		code,
	).Scan(&ct).Error
	if err != nil {
		return nil, err
	}
	if ct.ID == 0 {
		return nil, nil
	}
	return &ct, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.ContainerType, error) {
	var items []domain.ContainerType
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, size, description, created_at, updated_at
		 FROM container_types ORDER BY code ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
