package repository

import (
	"context"
	"time"

	"github.com/harborline/seaquote/internal/tariff/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, rate *domain.BaseRate) error {
	return db.WithContext(ctx).Create(rate).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, rate *domain.BaseRate) error {
	return db.WithContext(ctx).Exec(
		`UPDATE base_rates SET price = ?, currency = ?, expiry_date = ? WHERE id = ?`,
		rate.Price,
		rate.Currency,
		rate.ExpiryDate,
		rate.ID,
	).Error
}

func (r *repo) FindEffective(ctx context.Context, db *gorm.DB, routeID, containerTypeID int64, asOf time.Time) (*domain.BaseRate, error) {
	var rate domain.BaseRate
	err := db.WithContext(ctx).Raw(
		`SELECT id, route_id, container_type_id, price, currency, effective_date, expiry_date, created_at
		 FROM base_rates
		 WHERE route_id = ? AND container_type_id = ?
		   AND effective_date <= ?
		   AND (expiry_date IS NULL OR expiry_date >= ?)
		 ORDER BY effective_date DESC, id DESC
		 LIMIT 1`,
		routeID,
		containerTypeID,
		asOf,
		asOf,
	).Scan(&rate).Error
	if err != nil {
		return nil, err
	}
	if rate.ID == 0 {
		return nil, nil
	}
	return &rate, nil
}

func (r *repo) FindByNaturalKey(ctx context.Context, db *gorm.DB, routeID, containerTypeID int64, effectiveDate time.Time) (*domain.BaseRate, error) {
	var rate domain.BaseRate
	err := db.WithContext(ctx).Raw(
		`SELECT id, route_id, container_type_id, price, currency, effective_date, expiry_date, created_at
		 FROM base_rates
		 WHERE route_id = ? AND container_type_id = ? AND effective_date = ?`,
		routeID,
		containerTypeID,
		effectiveDate,
	).Scan(&rate).Error
	if err != nil {
		return nil, err
	}
	if rate.ID == 0 {
		return nil, nil
	}
	return &rate, nil
}

func (r *repo) FindLatest(ctx context.Context, db *gorm.DB, limit int) ([]domain.BaseRate, error) {
	var items []domain.BaseRate
	err := db.WithContext(ctx).Raw(
		`SELECT id, route_id, container_type_id, price, currency, effective_date, expiry_date, created_at
		 FROM base_rates ORDER BY effective_date DESC, id DESC LIMIT ?`,
		limit,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.BaseRate{}).Count(&count).Error
	return count, err
}

func (r *repo) FindSurcharges(ctx context.Context, db *gorm.DB, rateID int64) ([]domain.RateSurcharge, error) {
	var items []domain.RateSurcharge
	err := db.WithContext(ctx).Raw(
		`SELECT id, rate_id, surcharge_id, amount, percentage, currency
		 FROM rate_surcharges WHERE rate_id = ?`,
		rateID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
