package service

import (
	"context"
	"strings"

	"github.com/harborline/seaquote/internal/cache"
	"github.com/harborline/seaquote/internal/port/domain"
	"github.com/harborline/seaquote/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Repo     domain.Repository
	RefCache cache.ReferenceCache
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     domain.Repository
	refCache cache.ReferenceCache
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("port.service"),
		repo:     p.Repo,
		refCache: p.RefCache,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Port, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, domain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	country := strings.TrimSpace(req.Country)
	if country == "" {
		return nil, domain.ErrInvalidCountry
	}

	p := &domain.Port{
		Code:    code,
		Name:    name,
		Country: country,
		Region:  strings.TrimSpace(req.Region),
	}
	if err := s.repo.Create(ctx, s.db, p); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateCode
		}
		return nil, err
	}

	s.refCache.InvalidatePorts()
	s.log.Info("port created", zap.String("code", p.Code))
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Port, error) {
	if ports, ok := s.refCache.GetPorts(); ok {
		return ports, nil
	}

	ports, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	s.refCache.SetPorts(ports)
	return ports, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Port, error) {
	p, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
