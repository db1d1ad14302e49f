package auth

import (
	"github.com/harborline/seaquote/internal/auth/repository"
	"github.com/harborline/seaquote/internal/auth/service"
	"github.com/harborline/seaquote/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(session.NewManager),
)
