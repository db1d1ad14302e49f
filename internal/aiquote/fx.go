package aiquote

import "go.uber.org/fx"

var Module = fx.Module("aiquote.service",
	fx.Provide(New),
)
