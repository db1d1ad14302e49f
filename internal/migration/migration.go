package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	authdomain "github.com/harborline/seaquote/internal/auth/domain"
	bookingdomain "github.com/harborline/seaquote/internal/booking/domain"
	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
	quotedomain "github.com/harborline/seaquote/internal/quote/domain"
	routedomain "github.com/harborline/seaquote/internal/route/domain"
	scheduledomain "github.com/harborline/seaquote/internal/schedule/domain"
	tariffdomain "github.com/harborline/seaquote/internal/tariff/domain"
	"gorm.io/gorm"
)

// RunMigrations applies the embedded SQL migrations. Postgres only; other
// dialects go through AutoMigrate.
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	upErr := migrator.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", upErr)
	}
	// Do not call migrator.Close here because it would close the shared *sql.DB.

	return nil
}

// AutoMigrate creates the schema from the models. Used for sqlite and
// mysql, where the embedded postgres migrations do not apply.
func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&authdomain.User{},
		&authdomain.Session{},
		&portdomain.Port{},
		&containertypedomain.ContainerType{},
		&routedomain.Route{},
		&tariffdomain.BaseRate{},
		&tariffdomain.Surcharge{},
		&tariffdomain.RateSurcharge{},
		&scheduledomain.VesselSchedule{},
		&quotedomain.Query{},
		&bookingdomain.Booking{},
	)
}
