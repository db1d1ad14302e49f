package repository

import (
	"context"

	"github.com/harborline/seaquote/internal/booking/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, booking *domain.Booking) error {
	return db.WithContext(ctx).Create(booking).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status string) error {
	return db.WithContext(ctx).Exec(
		`UPDATE bookings SET status = ? WHERE id = ?`,
		status,
		id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Booking, error) {
	var booking domain.Booking
	err := db.WithContext(ctx).Raw(
		`SELECT id, reference, user_id, origin_port, destination_port, container_type, status, quote_snapshot, booking_date
		 FROM bookings WHERE id = ?`,
		id,
	).Scan(&booking).Error
	if err != nil {
		return nil, err
	}
	if booking.ID == 0 {
		return nil, nil
	}
	return &booking, nil
}

func (r *repo) FindByUser(ctx context.Context, db *gorm.DB, userID int64) ([]domain.Booking, error) {
	var items []domain.Booking
	err := db.WithContext(ctx).Raw(
		`SELECT id, reference, user_id, origin_port, destination_port, container_type, status, quote_snapshot, booking_date
		 FROM bookings WHERE user_id = ? ORDER BY id DESC`,
		userID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Booking, error) {
	var items []domain.Booking
	err := db.WithContext(ctx).Raw(
		`SELECT id, reference, user_id, origin_port, destination_port, container_type, status, quote_snapshot, booking_date
		 FROM bookings ORDER BY id DESC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) CountByStatus(ctx context.Context, db *gorm.DB, status string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Booking{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
