package port

import (
	"github.com/harborline/seaquote/internal/port/repository"
	"github.com/harborline/seaquote/internal/port/service"
	"go.uber.org/fx"
)

var Module = fx.Module("port.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
