package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/harborline/seaquote/internal/config"
	"github.com/harborline/seaquote/internal/migration"
	"github.com/harborline/seaquote/internal/observability"
	"github.com/harborline/seaquote/internal/server"
	"github.com/harborline/seaquote/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.Provide(RegisterSnowflake),
		config.Module,
		observability.Module,
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
