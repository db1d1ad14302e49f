package importer

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	containertyperepo "github.com/harborline/seaquote/internal/containertype/repository"
	"github.com/harborline/seaquote/internal/migration"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
	portrepo "github.com/harborline/seaquote/internal/port/repository"
	routedomain "github.com/harborline/seaquote/internal/route/domain"
	routerepo "github.com/harborline/seaquote/internal/route/repository"
	scheduledomain "github.com/harborline/seaquote/internal/schedule/domain"
	schedulerepo "github.com/harborline/seaquote/internal/schedule/repository"
	schedulesvc "github.com/harborline/seaquote/internal/schedule/service"
	tariffdomain "github.com/harborline/seaquote/internal/tariff/domain"
	tariffrepo "github.com/harborline/seaquote/internal/tariff/repository"
	tariffsvc "github.com/harborline/seaquote/internal/tariff/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	path := filepath.Join(t.TempDir(), "import.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func newImporter(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migration.AutoMigrate(conn))

	log := zap.NewNop()
	svc := New(Params{
		DB:                conn,
		Log:               log,
		PortRepo:          portrepo.Provide(),
		ContainerTypeRepo: containertyperepo.Provide(),
		RouteRepo:         routerepo.Provide(),
		TariffService:     tariffsvc.New(tariffsvc.Params{DB: conn, Log: log, Repo: tariffrepo.Provide()}),
		Schedules:         schedulesvc.New(schedulesvc.Params{DB: conn, Log: log, Repo: schedulerepo.Provide()}),
	})

	require.NoError(t, conn.Create(&portdomain.Port{Code: "SHA", Name: "上海", Country: "China", Region: "Asia"}).Error)
	require.NoError(t, conn.Create(&portdomain.Port{Code: "LAX", Name: "洛杉磯", Country: "United States", Region: "North America"}).Error)
	require.NoError(t, conn.Create(&containertypedomain.ContainerType{Code: "40HQ", Name: "40呎高櫃", Size: "40ft"}).Error)

	return svc, conn
}

func TestImportRatesCreatesRouteAndRate(t *testing.T) {
	svc, conn := newImporter(t)
	path := writeWorkbook(t, [][]string{
		{colOriginCode, colDestinationCode, colContainerCode, colPrice, colCurrency, colTransitTime, colEffectiveDate},
		{"SHA", "LAX", "40HQ", "2600", "USD", "15", "2025-07-01"},
	})

	summary, err := svc.ImportRates(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 0, summary.Skipped)

	var route routedomain.Route
	require.NoError(t, conn.First(&route).Error)
	assert.Equal(t, 15, route.TransitTime)

	var rate tariffdomain.BaseRate
	require.NoError(t, conn.First(&rate).Error)
	assert.Equal(t, route.ID, rate.RouteID)
	assert.Equal(t, 2600.0, rate.Price)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), rate.EffectiveDate)
}

func TestImportRatesSkipsBadRows(t *testing.T) {
	svc, conn := newImporter(t)
	path := writeWorkbook(t, [][]string{
		{colOriginCode, colDestinationCode, colContainerCode, colPrice, colCurrency, colTransitTime, colEffectiveDate},
		{"XXX", "LAX", "40HQ", "2600", "USD", "15", "2025-07-01"},
		{"SHA", "LAX", "40HQ", "2600", "USD", "", "2025-07-01"},
		{"SHA", "LAX", "40HQ", "not-a-number", "USD", "15", "2025-07-01"},
		{"SHA", "LAX", "40HQ", "2600", "USD", "15", "2025-07-01"},
	})

	summary, err := svc.ImportRates(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 3, summary.Skipped)
	require.Len(t, summary.Errors, 3)
	assert.Equal(t, 2, summary.Errors[0].Row)
	assert.Equal(t, "找不到起運港代碼：XXX", summary.Errors[0].Reason)
	assert.Equal(t, "新航線缺少有效的航程時間", summary.Errors[1].Reason)
	assert.Equal(t, "基本運費無效", summary.Errors[2].Reason)

	var count int64
	require.NoError(t, conn.Model(&tariffdomain.BaseRate{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestImportRatesAcceptsSlashedDates(t *testing.T) {
	svc, conn := newImporter(t)
	path := writeWorkbook(t, [][]string{
		{colOriginCode, colDestinationCode, colContainerCode, colPrice, colCurrency, colTransitTime, colEffectiveDate, colExpiryDate},
		{"SHA", "LAX", "40HQ", "2600", "USD", "15", "2025/07/01", "2025/12/31"},
	})

	summary, err := svc.ImportRates(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)

	var rate tariffdomain.BaseRate
	require.NoError(t, conn.First(&rate).Error)
	require.NotNil(t, rate.ExpiryDate)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), *rate.ExpiryDate)
}

func TestImportSchedulesRequiresExistingRoute(t *testing.T) {
	svc, conn := newImporter(t)
	path := writeWorkbook(t, [][]string{
		{colOriginCode, colDestinationCode, colVesselName, colVoyage, colDepartureDate, colArrivalDate},
		{"SHA", "LAX", "EVER GIVEN", "A01", "2025-08-05", "2025-08-20"},
	})

	summary, err := svc.ImportSchedules(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, "找不到從SHA到LAX的航線", summary.Errors[0].Reason)

	require.NoError(t, conn.Create(&routedomain.Route{OriginPortID: 1, DestinationPortID: 2, TransitTime: 15}).Error)

	summary, err = svc.ImportSchedules(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)

	var sailing scheduledomain.VesselSchedule
	require.NoError(t, conn.First(&sailing).Error)
	assert.Equal(t, "EVER GIVEN", sailing.VesselName)
	assert.Equal(t, "A01", sailing.Voyage)
}

func TestImportSchedulesUpsertsByNaturalKey(t *testing.T) {
	svc, conn := newImporter(t)
	require.NoError(t, conn.Create(&routedomain.Route{OriginPortID: 1, DestinationPortID: 2, TransitTime: 15}).Error)

	path := writeWorkbook(t, [][]string{
		{colOriginCode, colDestinationCode, colVesselName, colVoyage, colDepartureDate, colArrivalDate},
		{"SHA", "LAX", "EVER GIVEN", "A01", "2025-08-05", "2025-08-20"},
	})
	_, err := svc.ImportSchedules(context.Background(), path)
	require.NoError(t, err)

	updated := writeWorkbook(t, [][]string{
		{colOriginCode, colDestinationCode, colVesselName, colVoyage, colDepartureDate, colArrivalDate},
		{"SHA", "LAX", "EVER GIVEN", "A01", "2025-08-05", "2025-08-21"},
	})
	summary, err := svc.ImportSchedules(context.Background(), updated)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)

	var count int64
	require.NoError(t, conn.Model(&scheduledomain.VesselSchedule{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var sailing scheduledomain.VesselSchedule
	require.NoError(t, conn.First(&sailing).Error)
	assert.Equal(t, time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC), sailing.ArrivalDate)
}

func TestImportRatesEmptyWorkbook(t *testing.T) {
	svc, _ := newImporter(t)
	path := writeWorkbook(t, [][]string{
		{colOriginCode, colDestinationCode, colContainerCode, colPrice, colCurrency, colTransitTime, colEffectiveDate},
	})

	_, err := svc.ImportRates(context.Background(), path)
	assert.Error(t, err)
}
