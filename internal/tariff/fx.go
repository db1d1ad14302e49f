package tariff

import (
	"github.com/harborline/seaquote/internal/tariff/repository"
	"github.com/harborline/seaquote/internal/tariff/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tariff.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
