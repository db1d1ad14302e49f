package service

import (
	"context"
	"strings"
	"time"

	"github.com/harborline/seaquote/internal/tariff/domain"
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
		log:  p.Log.Named("tariff.service"),
		repo: p.Repo,
	}
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertRequest) (*domain.BaseRate, error) {
	if req.RouteID <= 0 {
		return nil, domain.ErrInvalidRoute
	}
	if req.ContainerTypeID <= 0 {
		return nil, domain.ErrInvalidContainerType
	}
	if req.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}
	if len(currency) != 3 {
		return nil, domain.ErrInvalidCurrency
	}
	if req.EffectiveDate.IsZero() {
		return nil, domain.ErrInvalidEffectiveDate
	}

	existing, err := s.repo.FindByNaturalKey(ctx, s.db, req.RouteID, req.ContainerTypeID, req.EffectiveDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Price = req.Price
		existing.Currency = currency
		existing.ExpiryDate = req.ExpiryDate
		if err := s.repo.Update(ctx, s.db, existing); err != nil {
			return nil, err
		}
		s.log.Info("base rate updated",
			zap.Int64("route_id", existing.RouteID),
			zap.Int64("container_type_id", existing.ContainerTypeID),
			zap.Time("effective_date", existing.EffectiveDate),
		)
		return existing, nil
	}

	rate := &domain.BaseRate{
		RouteID:         req.RouteID,
		ContainerTypeID: req.ContainerTypeID,
		Price:           req.Price,
		Currency:        currency,
		EffectiveDate:   req.EffectiveDate,
		ExpiryDate:      req.ExpiryDate,
	}
	if err := s.repo.Create(ctx, s.db, rate); err != nil {
		return nil, err
	}
	s.log.Info("base rate created",
		zap.Int64("route_id", rate.RouteID),
		zap.Int64("container_type_id", rate.ContainerTypeID),
		zap.Time("effective_date", rate.EffectiveDate),
	)
	return rate, nil
}

func (s *Service) Effective(ctx context.Context, routeID, containerTypeID int64, asOf time.Time) (*domain.BaseRate, error) {
	rate, err := s.repo.FindEffective(ctx, s.db, routeID, containerTypeID, asOf)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, domain.ErrNotFound
	}
	return rate, nil
}

func (s *Service) Latest(ctx context.Context, limit int) ([]domain.BaseRate, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.FindLatest(ctx, s.db, limit)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, s.db)
}

func (s *Service) Surcharges(ctx context.Context, rateID int64) ([]domain.RateSurcharge, error) {
	return s.repo.FindSurcharges(ctx, s.db, rateID)
}
