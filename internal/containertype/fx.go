package containertype

import (
	"github.com/harborline/seaquote/internal/containertype/repository"
	"github.com/harborline/seaquote/internal/containertype/service"
	"go.uber.org/fx"
)

var Module = fx.Module("containertype.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
