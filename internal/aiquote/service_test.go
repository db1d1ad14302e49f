package aiquote

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/harborline/seaquote/internal/cache"
	"github.com/harborline/seaquote/internal/clock"
	"github.com/harborline/seaquote/internal/config"
	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	containertyperepo "github.com/harborline/seaquote/internal/containertype/repository"
	containertypesvc "github.com/harborline/seaquote/internal/containertype/service"
	"github.com/harborline/seaquote/internal/migration"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
	portrepo "github.com/harborline/seaquote/internal/port/repository"
	portsvc "github.com/harborline/seaquote/internal/port/service"
	quotedomain "github.com/harborline/seaquote/internal/quote/domain"
	quotesvc "github.com/harborline/seaquote/internal/quote/service"
	routedomain "github.com/harborline/seaquote/internal/route/domain"
	routerepo "github.com/harborline/seaquote/internal/route/repository"
	scheduledomain "github.com/harborline/seaquote/internal/schedule/domain"
	schedulerepo "github.com/harborline/seaquote/internal/schedule/repository"
	tariffdomain "github.com/harborline/seaquote/internal/tariff/domain"
	tariffrepo "github.com/harborline/seaquote/internal/tariff/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var today = time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

// newPipeline wires the full text-quote stack on an in-memory database:
// reference data, quote resolution, and the text pipeline on top.
func newPipeline(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migration.AutoMigrate(conn))

	log := zap.NewNop()
	fake := clock.NewFakeClock(today)
	refCache := cache.NewReferenceCache()

	portRepo := portrepo.Provide()
	ctRepo := containertyperepo.Provide()

	ports := portsvc.New(portsvc.Params{DB: conn, Log: log, Repo: portRepo, RefCache: refCache})
	containerTypes := containertypesvc.New(containertypesvc.Params{DB: conn, Log: log, Repo: ctRepo, RefCache: refCache})
	quotes := quotesvc.New(quotesvc.Params{
		DB:                conn,
		Log:               log,
		Clock:             fake,
		PortRepo:          portRepo,
		ContainerTypeRepo: ctRepo,
		RouteRepo:         routerepo.Provide(),
		TariffRepo:        tariffrepo.Provide(),
		ScheduleRepo:      schedulerepo.Provide(),
	})

	svc := New(Params{
		Log:            log,
		Clock:          fake,
		Aliases:        config.NewStaticAliasTableHolder(config.DefaultAliasTable()),
		Ports:          ports,
		ContainerTypes: containerTypes,
		Quotes:         quotes,
	})
	return svc, conn
}

func seedLane(t *testing.T, conn *gorm.DB, withRate bool) {
	t.Helper()

	sha := portdomain.Port{Code: "SHA", Name: "上海", Country: "China", Region: "Asia"}
	lax := portdomain.Port{Code: "LAX", Name: "洛杉磯", Country: "United States", Region: "North America"}
	rtm := portdomain.Port{Code: "RTM", Name: "鹿特丹", Country: "Netherlands", Region: "Europe"}
	require.NoError(t, conn.Create(&sha).Error)
	require.NoError(t, conn.Create(&lax).Error)
	require.NoError(t, conn.Create(&rtm).Error)

	hc40 := containertypedomain.ContainerType{Code: "40HQ", Name: "40呎高櫃", Size: "40ft"}
	require.NoError(t, conn.Create(&hc40).Error)

	route := routedomain.Route{OriginPortID: sha.ID, DestinationPortID: lax.ID, TransitTime: 15}
	require.NoError(t, conn.Create(&route).Error)

	if withRate {
		require.NoError(t, conn.Create(&tariffdomain.BaseRate{
			RouteID:         route.ID,
			ContainerTypeID: hc40.ID,
			Price:           2600,
			Currency:        "USD",
			EffectiveDate:   today.AddDate(0, -1, 0),
		}).Error)
		require.NoError(t, conn.Create(&scheduledomain.VesselSchedule{
			RouteID:       route.ID,
			VesselName:    "EVER GIVEN",
			Voyage:        "A01",
			DepartureDate: today.AddDate(0, 0, 4),
			ArrivalDate:   today.AddDate(0, 0, 19),
		}).Error)
	}
}

func TestQuoteFromTextChineseQuery(t *testing.T) {
	svc, conn := newPipeline(t)
	seedLane(t, conn, true)

	resp, err := svc.QuoteFromText(context.Background(), "請提供從上海到洛杉磯的40HQ運費", today, nil)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.ErrorType)
	assert.Contains(t, resp.Response, "從 上海 到 洛杉磯 的 40呎高櫃")
	assert.Contains(t, resp.Response, "2600 USD")
	assert.Contains(t, resp.Response, "EVER GIVEN")
}

func TestQuoteFromTextEnglishQueryMatchesChinese(t *testing.T) {
	svc, conn := newPipeline(t)
	seedLane(t, conn, true)
	ctx := context.Background()

	zh, err := svc.QuoteFromText(ctx, "請提供從上海到洛杉磯的40HQ運費", today, nil)
	require.NoError(t, err)
	en, err := svc.QuoteFromText(ctx, "rate from shanghai to los angeles 40hq", today, nil)
	require.NoError(t, err)

	assert.True(t, en.Success)
	assert.Equal(t, zh.Response, en.Response)
}

func TestQuoteFromTextIncompleteQuery(t *testing.T) {
	svc, conn := newPipeline(t)
	seedLane(t, conn, true)

	resp, err := svc.QuoteFromText(context.Background(), "how much is shipping?", today, nil)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrorTypeIncomplete, resp.ErrorType)
	assert.Contains(t, resp.Response, "起運港")
}

func TestQuoteFromTextRouteNotFound(t *testing.T) {
	svc, conn := newPipeline(t)
	seedLane(t, conn, true)

	resp, err := svc.QuoteFromText(context.Background(), "從洛杉磯到鹿特丹的40HQ運費", today, nil)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrorTypeRouteNotFound, resp.ErrorType)
	assert.Contains(t, resp.Response, "航線資料")
}

func TestQuoteFromTextRateNotFound(t *testing.T) {
	svc, conn := newPipeline(t)
	seedLane(t, conn, false)

	resp, err := svc.QuoteFromText(context.Background(), "從上海到洛杉磯的40HQ運費", today, nil)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrorTypeRateNotFound, resp.ErrorType)
	assert.Contains(t, resp.Response, "有效運價")
}

func TestQuoteFromTextRecordsAuditRows(t *testing.T) {
	svc, conn := newPipeline(t)
	seedLane(t, conn, true)
	ctx := context.Background()

	userID := int64(7)
	_, err := svc.QuoteFromText(ctx, "從上海到洛杉磯的40HQ運費", today, &userID)
	require.NoError(t, err)
	_, err = svc.QuoteFromText(ctx, "nonsense", today, nil)
	require.NoError(t, err)

	var rows []quotedomain.Query
	require.NoError(t, conn.Order("id ASC").Find(&rows).Error)
	require.Len(t, rows, 2)

	assert.True(t, rows[0].Succeeded)
	require.NotNil(t, rows[0].UserID)
	assert.Equal(t, int64(7), *rows[0].UserID)
	assert.Nil(t, rows[0].ErrorType)

	assert.False(t, rows[1].Succeeded)
	require.NotNil(t, rows[1].ErrorType)
	assert.Equal(t, ErrorTypeIncomplete, *rows[1].ErrorType)
}
