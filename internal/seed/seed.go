// Package seed bootstraps a usable installation: a default admin account
// and, when enabled, a small demo dataset for local exploration.
package seed

import (
	"context"
	"errors"
	"time"

	authdomain "github.com/harborline/seaquote/internal/auth/domain"
	"github.com/harborline/seaquote/internal/auth/password"
	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
	routedomain "github.com/harborline/seaquote/internal/route/domain"
	scheduledomain "github.com/harborline/seaquote/internal/schedule/domain"
	tariffdomain "github.com/harborline/seaquote/internal/tariff/domain"
	"gorm.io/gorm"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@seaquote.local"
	defaultAdminPassword = "admin123!"
)

// EnsureAdmin creates the default admin account when no users exist yet.
// The password must be rotated on first login in real deployments.
func EnsureAdmin(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&authdomain.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := password.Hash(defaultAdminPassword)
		if err != nil {
			return err
		}
		return tx.Create(&authdomain.User{
			Username:     defaultAdminUsername,
			Email:        defaultAdminEmail,
			PasswordHash: hash,
			Role:         authdomain.RoleAdmin,
		}).Error
	})
}

// EnsureDemoData loads a small Asia-to-everywhere dataset so a fresh
// install can answer quote queries immediately. Idempotent: ports are the
// sentinel, so a second run is a no-op.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&portdomain.Port{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		ports := []portdomain.Port{
			{Code: "SHA", Name: "上海", Country: "CN", Region: "Asia"},
			{Code: "SZX", Name: "深圳", Country: "CN", Region: "Asia"},
			{Code: "KHH", Name: "高雄", Country: "TW", Region: "Asia"},
			{Code: "LAX", Name: "洛杉磯", Country: "US", Region: "America"},
			{Code: "RTM", Name: "鹿特丹", Country: "NL", Region: "Europe"},
			{Code: "HAM", Name: "漢堡", Country: "DE", Region: "Europe"},
		}
		if err := tx.Create(&ports).Error; err != nil {
			return err
		}
		byCode := make(map[string]int64, len(ports))
		for _, p := range ports {
			byCode[p.Code] = p.ID
		}

		containerTypes := []containertypedomain.ContainerType{
			{Code: "20GP", Name: "20呎標準貨櫃", Size: "20GP"},
			{Code: "40GP", Name: "40呎標準貨櫃", Size: "40GP"},
			{Code: "40HQ", Name: "40呎高櫃", Size: "40HQ"},
		}
		if err := tx.Create(&containerTypes).Error; err != nil {
			return err
		}
		ctByCode := make(map[string]int64, len(containerTypes))
		for _, ct := range containerTypes {
			ctByCode[ct.Code] = ct.ID
		}

		routes := []routedomain.Route{
			{OriginPortID: byCode["SHA"], DestinationPortID: byCode["LAX"], TransitTime: 15},
			{OriginPortID: byCode["KHH"], DestinationPortID: byCode["LAX"], TransitTime: 14},
			{OriginPortID: byCode["SHA"], DestinationPortID: byCode["RTM"], TransitTime: 28},
			{OriginPortID: byCode["SZX"], DestinationPortID: byCode["HAM"], TransitTime: 30},
		}
		if err := tx.Create(&routes).Error; err != nil {
			return err
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		monthAgo := today.AddDate(0, -1, 0)

		var rates []tariffdomain.BaseRate
		prices := map[string]float64{"20GP": 1500, "40GP": 2400, "40HQ": 2600}
		for _, route := range routes {
			for code, price := range prices {
				rates = append(rates, tariffdomain.BaseRate{
					RouteID:         route.ID,
					ContainerTypeID: ctByCode[code],
					Price:           price,
					Currency:        "USD",
					EffectiveDate:   monthAgo,
				})
			}
		}
		if err := tx.Create(&rates).Error; err != nil {
			return err
		}

		var schedules []scheduledomain.VesselSchedule
		vessels := []string{"EVER GIVEN", "OOCL TAIPEI", "COSCO PACIFIC"}
		for i, route := range routes {
			for week := 0; week < 3; week++ {
				departure := today.AddDate(0, 0, 3+week*7)
				schedules = append(schedules, scheduledomain.VesselSchedule{
					RouteID:       route.ID,
					VesselName:    vessels[(i+week)%len(vessels)],
					Voyage:        voyageNumber(i, week),
					DepartureDate: departure,
					ArrivalDate:   departure.AddDate(0, 0, route.TransitTime),
				})
			}
		}
		return tx.Create(&schedules).Error
	})
}

func voyageNumber(routeIdx, week int) string {
	return string(rune('A'+routeIdx)) + "0" + string(rune('1'+week))
}
