package repository

import (
	"context"

	"github.com/harborline/seaquote/internal/port/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, port *domain.Port) error {
	return db.WithContext(ctx).Create(port).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Port, error) {
	var p domain.Port
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, country, region, created_at, updated_at
		 FROM ports WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.Port, error) {
	var p domain.Port
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, country, region, created_at, updated_at
		 FROM ports WHERE code = ?`,
		code,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Port, error) {
	var items []domain.Port
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, country, region, created_at, updated_at
		 FROM ports ORDER BY code ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
