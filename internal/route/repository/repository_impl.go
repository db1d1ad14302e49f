package repository

import (
	"context"

	"github.com/harborline/seaquote/internal/route/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, route *domain.Route) error {
	return db.WithContext(ctx).Create(route).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Route, error) {
	var route domain.Route
	err := db.WithContext(ctx).Raw(
		`SELECT id, origin_port_id, destination_port_id, transit_time, description, created_at
		 FROM routes WHERE id = ?`,
		id,
	).Scan(&route).Error
	if err != nil {
		return nil, err
	}
	if route.ID == 0 {
		return nil, nil
	}
	return &route, nil
}

func (r *repo) FindByPorts(ctx context.Context, db *gorm.DB, originPortID, destinationPortID int64) (*domain.Route, error) {
	var route domain.Route
	err := db.WithContext(ctx).Raw(
		`SELECT id, origin_port_id, destination_port_id, transit_time, description, created_at
		 FROM routes WHERE origin_port_id = ? AND destination_port_id = ?`,
		originPortID,
		destinationPortID,
	).Scan(&route).Error
	if err != nil {
		return nil, err
	}
	if route.ID == 0 {
		return nil, nil
	}
	return &route, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Route, error) {
	var items []domain.Route
	err := db.WithContext(ctx).Raw(
		`SELECT id, origin_port_id, destination_port_id, transit_time, description, created_at
		 FROM routes ORDER BY id ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
