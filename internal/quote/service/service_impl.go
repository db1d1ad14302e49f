package service

import (
	"context"
	"strconv"
	"time"

	"github.com/harborline/seaquote/internal/clock"
	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
	"github.com/harborline/seaquote/internal/quote/domain"
	routedomain "github.com/harborline/seaquote/internal/route/domain"
	scheduledomain "github.com/harborline/seaquote/internal/schedule/domain"
	tariffdomain "github.com/harborline/seaquote/internal/tariff/domain"
	"github.com/harborline/seaquote/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB                *gorm.DB
	Log               *zap.Logger
	Clock             clock.Clock
	PortRepo          portdomain.Repository
	ContainerTypeRepo containertypedomain.Repository
	RouteRepo         routedomain.Repository
	TariffRepo        tariffdomain.Repository
	ScheduleRepo      scheduledomain.Repository
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	clock         clock.Clock
	ports         portdomain.Repository
	containerType containertypedomain.Repository
	routes        routedomain.Repository
	tariffs       tariffdomain.Repository
	schedules     scheduledomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("quote.service"),
		clock:         p.Clock,
		ports:         p.PortRepo,
		containerType: p.ContainerTypeRepo,
		routes:        p.RouteRepo,
		tariffs:       p.TariffRepo,
		schedules:     p.ScheduleRepo,
	}
}

func (s *Service) Resolve(ctx context.Context, req domain.ResolveRequest) (*domain.Result, error) {
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = clock.Today(s.clock)
	}

	var result *domain.Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		origin, err := s.ports.FindByID(ctx, tx, req.OriginPortID)
		if err != nil {
			return err
		}
		if origin == nil {
			return domain.ErrOriginNotFound
		}
		destination, err := s.ports.FindByID(ctx, tx, req.DestinationPortID)
		if err != nil {
			return err
		}
		if destination == nil {
			return domain.ErrDestinationNotFound
		}
		ct, err := s.containerType.FindByID(ctx, tx, req.ContainerTypeID)
		if err != nil {
			return err
		}
		if ct == nil {
			return domain.ErrContainerTypeNotFound
		}

		route, err := s.routes.FindByPorts(ctx, tx, origin.ID, destination.ID)
		if err != nil {
			return err
		}
		if route == nil {
			return domain.ErrRouteNotFound
		}

		rate, err := s.tariffs.FindEffective(ctx, tx, route.ID, ct.ID, asOf)
		if err != nil {
			return err
		}
		if rate == nil {
			return domain.ErrRateNotFound
		}

		windowEnd := asOf.AddDate(0, 0, domain.ScheduleWindowDays)
		sailings, err := s.schedules.FindUpcoming(ctx, tx, route.ID, asOf, windowEnd, domain.MaxSchedules)
		if err != nil {
			return err
		}

		result = &domain.Result{
			OriginPort:      *origin,
			DestinationPort: *destination,
			ContainerType:   *ct,
			Route:           *route,
			Rate:            *rate,
			Schedules:       sailings,
			AsOf:            asOf,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("quote resolved",
		zap.String("origin", result.OriginPort.Code),
		zap.String("destination", result.DestinationPort.Code),
		zap.String("container_type", result.ContainerType.Code),
		zap.Float64("price", result.Rate.Price),
	)
	return result, nil
}

func (s *Service) ResolveByCodes(ctx context.Context, originCode, destinationCode, containerTypeCode string, asOf time.Time) (*domain.Result, error) {
	origin, err := s.ports.FindByCode(ctx, s.db, originCode)
	if err != nil {
		return nil, err
	}
	if origin == nil {
		return nil, domain.ErrOriginNotFound
	}
	destination, err := s.ports.FindByCode(ctx, s.db, destinationCode)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, domain.ErrDestinationNotFound
	}
	ct, err := s.containerType.FindByCode(ctx, s.db, containerTypeCode)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, domain.ErrContainerTypeNotFound
	}

	return s.Resolve(ctx, domain.ResolveRequest{
		OriginPortID:      origin.ID,
		DestinationPortID: destination.ID,
		ContainerTypeID:   ct.ID,
		AsOf:              asOf,
	})
}

func (s *Service) RecordQuery(ctx context.Context, q *domain.Query) error {
	if err := s.db.WithContext(ctx).Create(q).Error; err != nil {
		s.log.Warn("failed to record quote query", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) RecentQueries(ctx context.Context, limit int) ([]domain.Query, error) {
	if limit <= 0 {
		limit = 20
	}
	var items []domain.Query
	err := s.db.WithContext(ctx).Raw(
		`SELECT id, user_id, query_text, succeeded, error_type, created_at
		 FROM quote_queries ORDER BY id DESC LIMIT ?`,
		limit,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) QueriesPage(ctx context.Context, p pagination.Pagination) ([]domain.Query, *pagination.PageInfo, error) {
	limit := p.PageSize
	if limit <= 0 {
		limit = 20
	}

	query := s.db.WithContext(ctx).
		Table("quote_queries").
		Select("id, user_id, query_text, succeeded, error_type, created_at").
		Order("id DESC").
		Limit(limit + 1)

	if p.PageToken != "" {
		cursor, err := pagination.DecodeCursor(p.PageToken)
		if err != nil {
			return nil, nil, err
		}
		lastID, err := strconv.ParseInt(cursor.ID, 10, 64)
		if err != nil {
			return nil, nil, err
		}
		query = query.Where("id < ?", lastID)
	}

	var items []domain.Query
	if err := query.Scan(&items).Error; err != nil {
		return nil, nil, err
	}

	page, info := pagination.BuildPageInfo(items, limit, func(q domain.Query) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: strconv.FormatInt(q.ID, 10)})
		return token
	})
	return page, info, nil
}
