package repository

import (
	"context"
	"time"

	"github.com/harborline/seaquote/internal/schedule/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, sched *domain.VesselSchedule) error {
	return db.WithContext(ctx).Create(sched).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, sched *domain.VesselSchedule) error {
	return db.WithContext(ctx).Exec(
		`UPDATE vessel_schedules SET route_id = ?, arrival_date = ? WHERE id = ?`,
		sched.RouteID,
		sched.ArrivalDate,
		sched.ID,
	).Error
}

func (r *repo) FindByNaturalKey(ctx context.Context, db *gorm.DB, vesselName, voyage string, departureDate time.Time) (*domain.VesselSchedule, error) {
	var sched domain.VesselSchedule
	err := db.WithContext(ctx).Raw(
		`SELECT id, route_id, vessel_name, voyage, departure_date, arrival_date, created_at
		 FROM vessel_schedules
		 WHERE vessel_name = ? AND voyage = ? AND departure_date = ?`,
		vesselName,
		voyage,
		departureDate,
	).Scan(&sched).Error
	if err != nil {
		return nil, err
	}
	if sched.ID == 0 {
		return nil, nil
	}
	return &sched, nil
}

func (r *repo) FindUpcoming(ctx context.Context, db *gorm.DB, routeID int64, from, to time.Time, limit int) ([]domain.VesselSchedule, error) {
	var items []domain.VesselSchedule
	err := db.WithContext(ctx).Raw(
		`SELECT id, route_id, vessel_name, voyage, departure_date, arrival_date, created_at
		 FROM vessel_schedules
		 WHERE route_id = ? AND departure_date >= ? AND departure_date <= ?
		 ORDER BY departure_date ASC, id ASC
		 LIMIT ?`,
		routeID,
		from,
		to,
		limit,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindLatest(ctx context.Context, db *gorm.DB, limit int) ([]domain.VesselSchedule, error) {
	var items []domain.VesselSchedule
	err := db.WithContext(ctx).Raw(
		`SELECT id, route_id, vessel_name, voyage, departure_date, arrival_date, created_at
		 FROM vessel_schedules ORDER BY departure_date DESC, id DESC LIMIT ?`,
		limit,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.VesselSchedule{}).Count(&count).Error
	return count, err
}
