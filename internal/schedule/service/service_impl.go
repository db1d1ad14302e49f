package service

import (
	"context"
	"strings"
	"time"

	"github.com/harborline/seaquote/internal/schedule/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("schedule.service"),
		repo: p.Repo,
	}
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertRequest) (*domain.VesselSchedule, error) {
	if req.RouteID <= 0 {
		return nil, domain.ErrInvalidRoute
	}
	vessel := strings.TrimSpace(req.VesselName)
	if vessel == "" {
		return nil, domain.ErrInvalidVessel
	}
	voyage := strings.TrimSpace(req.Voyage)
	if voyage == "" {
		return nil, domain.ErrInvalidVoyage
	}
	if req.DepartureDate.IsZero() {
		return nil, domain.ErrInvalidDeparture
	}
	if req.ArrivalDate.IsZero() || req.ArrivalDate.Before(req.DepartureDate) {
		return nil, domain.ErrInvalidArrival
	}

	existing, err := s.repo.FindByNaturalKey(ctx, s.db, vessel, voyage, req.DepartureDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.RouteID = req.RouteID
		existing.ArrivalDate = req.ArrivalDate
		if err := s.repo.Update(ctx, s.db, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	sched := &domain.VesselSchedule{
		RouteID:       req.RouteID,
		VesselName:    vessel,
		Voyage:        voyage,
		DepartureDate: req.DepartureDate,
		ArrivalDate:   req.ArrivalDate,
	}
	if err := s.repo.Create(ctx, s.db, sched); err != nil {
		return nil, err
	}
	s.log.Info("schedule created",
		zap.String("vessel", sched.VesselName),
		zap.String("voyage", sched.Voyage),
		zap.Time("departure_date", sched.DepartureDate),
	)
	return sched, nil
}

func (s *Service) Upcoming(ctx context.Context, routeID int64, from, to time.Time, limit int) ([]domain.VesselSchedule, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.repo.FindUpcoming(ctx, s.db, routeID, from, to, limit)
}

func (s *Service) Latest(ctx context.Context, limit int) ([]domain.VesselSchedule, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.FindLatest(ctx, s.db, limit)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, s.db)
}
