package booking

import (
	"github.com/harborline/seaquote/internal/booking/repository"
	"github.com/harborline/seaquote/internal/booking/service"
	"go.uber.org/fx"
)

var Module = fx.Module("booking.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
