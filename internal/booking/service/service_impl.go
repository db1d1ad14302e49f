package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/harborline/seaquote/internal/booking/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Repo  domain.Repository
	GenID *snowflake.Node
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("booking.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, req domain.CreateRequest) (*domain.Booking, error) {
	origin := strings.TrimSpace(req.OriginPort)
	if origin == "" {
		return nil, domain.ErrInvalidOrigin
	}
	destination := strings.TrimSpace(req.DestinationPort)
	if destination == "" {
		return nil, domain.ErrInvalidDestination
	}
	containerType := strings.TrimSpace(req.ContainerType)
	if containerType == "" {
		return nil, domain.ErrInvalidContainerType
	}

	booking := &domain.Booking{
		Reference:       "BK-" + s.genID.Generate().String(),
		UserID:          userID,
		OriginPort:      origin,
		DestinationPort: destination,
		ContainerType:   containerType,
		Status:          domain.StatusPending,
		QuoteSnapshot:   req.QuoteSnapshot,
	}
	if err := s.repo.Create(ctx, s.db, booking); err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		zap.String("reference", booking.Reference),
		zap.Int64("user_id", userID),
		zap.String("origin", origin),
		zap.String("destination", destination),
	)
	return booking, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
	default:
		return nil, domain.ErrInvalidStatus
	}

	booking, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}

	if err := s.repo.UpdateStatus(ctx, s.db, id, status); err != nil {
		return nil, err
	}
	booking.Status = status

	s.log.Info("booking status updated", zap.Int64("id", id), zap.String("status", status))
	return booking, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	return booking, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.repo.FindByUser(ctx, s.db, userID)
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) PendingCount(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, s.db, domain.StatusPending)
}
