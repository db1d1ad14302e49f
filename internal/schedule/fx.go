package schedule

import (
	"github.com/harborline/seaquote/internal/schedule/repository"
	"github.com/harborline/seaquote/internal/schedule/service"
	"go.uber.org/fx"
)

var Module = fx.Module("schedule.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
