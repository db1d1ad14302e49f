package route

import (
	"github.com/harborline/seaquote/internal/route/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("route.repository",
	fx.Provide(repository.Provide),
)
