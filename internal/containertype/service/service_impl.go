package service

import (
	"context"
	"strings"

	"github.com/harborline/seaquote/internal/cache"
	"github.com/harborline/seaquote/internal/containertype/domain"
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
		log:      p.Log.Named("containertype.service"),
		repo:     p.Repo,
		refCache: p.RefCache,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.ContainerType, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, domain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	size := strings.TrimSpace(req.Size)
	if size == "" {
		return nil, domain.ErrInvalidSize
	}

	var description *string
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed != "" {
			description = &trimmed
		}
	}

	ct := &domain.ContainerType{
		Code:        code,
		Name:        name,
		Size:        size,
		Description: description,
	}
	if err := s.repo.Create(ctx, s.db, ct); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateCode
		}
		return nil, err
	}

	s.refCache.InvalidateContainerTypes()
	s.log.Info("container type created", zap.String("code", ct.Code))
	return ct, nil
}

func (s *Service) List(ctx context.Context) ([]domain.ContainerType, error) {
	if types, ok := s.refCache.GetContainerTypes(); ok {
		return types, nil
	}

	types, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	s.refCache.SetContainerTypes(types)
	return types, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.ContainerType, error) {
	ct, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, domain.ErrNotFound
	}
	return ct, nil
}
