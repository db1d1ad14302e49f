package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/harborline/seaquote/internal/clock"
	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	containertyperepo "github.com/harborline/seaquote/internal/containertype/repository"
	"github.com/harborline/seaquote/internal/migration"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
	portrepo "github.com/harborline/seaquote/internal/port/repository"
	"github.com/harborline/seaquote/internal/quote/domain"
	routedomain "github.com/harborline/seaquote/internal/route/domain"
	routerepo "github.com/harborline/seaquote/internal/route/repository"
	scheduledomain "github.com/harborline/seaquote/internal/schedule/domain"
	schedulerepo "github.com/harborline/seaquote/internal/schedule/repository"
	tariffdomain "github.com/harborline/seaquote/internal/tariff/domain"
	tariffrepo "github.com/harborline/seaquote/internal/tariff/repository"
	"github.com/harborline/seaquote/pkg/db/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var asOf = time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	db  *gorm.DB
	svc domain.Service

	sha, lax, rtm portdomain.Port
	hc40, gp20    containertypedomain.ContainerType
	shaToLAX      routedomain.Route
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migration.AutoMigrate(conn))

	f := &fixture{db: conn}
	f.svc = New(Params{
		DB:                conn,
		Log:               zap.NewNop(),
		Clock:             clock.NewFakeClock(asOf),
		PortRepo:          portrepo.Provide(),
		ContainerTypeRepo: containertyperepo.Provide(),
		RouteRepo:         routerepo.Provide(),
		TariffRepo:        tariffrepo.Provide(),
		ScheduleRepo:      schedulerepo.Provide(),
	})

	f.sha = portdomain.Port{Code: "SHA", Name: "上海", Country: "China", Region: "Asia"}
	f.lax = portdomain.Port{Code: "LAX", Name: "洛杉磯", Country: "United States", Region: "North America"}
	f.rtm = portdomain.Port{Code: "RTM", Name: "鹿特丹", Country: "Netherlands", Region: "Europe"}
	require.NoError(t, conn.Create(&f.sha).Error)
	require.NoError(t, conn.Create(&f.lax).Error)
	require.NoError(t, conn.Create(&f.rtm).Error)

	f.hc40 = containertypedomain.ContainerType{Code: "40HQ", Name: "40呎高櫃", Size: "40ft"}
	f.gp20 = containertypedomain.ContainerType{Code: "20GP", Name: "20呎標準貨櫃", Size: "20ft"}
	require.NoError(t, conn.Create(&f.hc40).Error)
	require.NoError(t, conn.Create(&f.gp20).Error)

	f.shaToLAX = routedomain.Route{OriginPortID: f.sha.ID, DestinationPortID: f.lax.ID, TransitTime: 15}
	require.NoError(t, conn.Create(&f.shaToLAX).Error)

	return f
}

func (f *fixture) addRate(t *testing.T, price float64, effective time.Time, expiry *time.Time) tariffdomain.BaseRate {
	t.Helper()
	rate := tariffdomain.BaseRate{
		RouteID:         f.shaToLAX.ID,
		ContainerTypeID: f.hc40.ID,
		Price:           price,
		Currency:        "USD",
		EffectiveDate:   effective,
		ExpiryDate:      expiry,
	}
	require.NoError(t, f.db.Create(&rate).Error)
	return rate
}

func (f *fixture) addSailing(t *testing.T, vessel, voyage string, departure time.Time) {
	t.Helper()
	require.NoError(t, f.db.Create(&scheduledomain.VesselSchedule{
		RouteID:       f.shaToLAX.ID,
		VesselName:    vessel,
		Voyage:        voyage,
		DepartureDate: departure,
		ArrivalDate:   departure.AddDate(0, 0, 15),
	}).Error)
}

func (f *fixture) resolve(t *testing.T) (*domain.Result, error) {
	t.Helper()
	return f.svc.Resolve(context.Background(), domain.ResolveRequest{
		OriginPortID:      f.sha.ID,
		DestinationPortID: f.lax.ID,
		ContainerTypeID:   f.hc40.ID,
		AsOf:              asOf,
	})
}

func TestResolvePicksLatestEffectiveRate(t *testing.T) {
	f := newFixture(t)
	f.addRate(t, 1000, asOf.AddDate(0, -2, 0), nil)
	f.addRate(t, 1200, asOf.AddDate(0, -1, 0), nil)

	result, err := f.resolve(t)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, result.Rate.Price)
}

func TestResolveIgnoresFutureRate(t *testing.T) {
	f := newFixture(t)
	f.addRate(t, 1000, asOf.AddDate(0, -2, 0), nil)
	f.addRate(t, 1500, asOf.AddDate(0, 1, 0), nil)

	result, err := f.resolve(t)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, result.Rate.Price)
}

func TestResolveSkipsExpiredRate(t *testing.T) {
	f := newFixture(t)
	f.addRate(t, 1000, asOf.AddDate(0, -3, 0), nil)
	expiry := asOf.AddDate(0, 0, -7)
	f.addRate(t, 1400, asOf.AddDate(0, -1, 0), &expiry)

	result, err := f.resolve(t)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, result.Rate.Price)
}

func TestResolveExpiryDateIsInclusive(t *testing.T) {
	f := newFixture(t)
	expiry := asOf
	f.addRate(t, 1100, asOf.AddDate(0, -1, 0), &expiry)

	result, err := f.resolve(t)
	require.NoError(t, err)
	assert.Equal(t, 1100.0, result.Rate.Price)
}

func TestResolveScheduleWindow(t *testing.T) {
	f := newFixture(t)
	f.addRate(t, 1200, asOf.AddDate(0, -1, 0), nil)
	f.addSailing(t, "EVER GIVEN", "A01", asOf)
	f.addSailing(t, "OOCL TAIPEI", "B07", asOf.AddDate(0, 0, 30))
	f.addSailing(t, "COSCO PACIFIC", "C03", asOf.AddDate(0, 0, 31))
	f.addSailing(t, "MSC OSCAR", "D11", asOf.AddDate(0, 0, -1))

	result, err := f.resolve(t)
	require.NoError(t, err)
	require.Len(t, result.Schedules, 2)
	assert.Equal(t, "EVER GIVEN", result.Schedules[0].VesselName)
	assert.Equal(t, "OOCL TAIPEI", result.Schedules[1].VesselName)
}

func TestResolveReturnsThreeEarliestSailings(t *testing.T) {
	f := newFixture(t)
	f.addRate(t, 1200, asOf.AddDate(0, -1, 0), nil)
	for i := 5; i >= 1; i-- {
		f.addSailing(t, "EVER GIVEN", fmt.Sprintf("A0%d", i), asOf.AddDate(0, 0, i*3))
	}

	result, err := f.resolve(t)
	require.NoError(t, err)
	require.Len(t, result.Schedules, domain.MaxSchedules)
	assert.Equal(t, "A01", result.Schedules[0].Voyage)
	assert.Equal(t, "A02", result.Schedules[1].Voyage)
	assert.Equal(t, "A03", result.Schedules[2].Voyage)
}

func TestResolveRouteNotFound(t *testing.T) {
	f := newFixture(t)
	f.addRate(t, 1200, asOf.AddDate(0, -1, 0), nil)

	_, err := f.svc.Resolve(context.Background(), domain.ResolveRequest{
		OriginPortID:      f.lax.ID,
		DestinationPortID: f.sha.ID,
		ContainerTypeID:   f.hc40.ID,
		AsOf:              asOf,
	})
	assert.ErrorIs(t, err, domain.ErrRouteNotFound)
}

func TestResolveRateNotFound(t *testing.T) {
	f := newFixture(t)
	f.addRate(t, 1200, asOf.AddDate(0, -1, 0), nil)

	_, err := f.svc.Resolve(context.Background(), domain.ResolveRequest{
		OriginPortID:      f.sha.ID,
		DestinationPortID: f.lax.ID,
		ContainerTypeID:   f.gp20.ID,
		AsOf:              asOf,
	})
	assert.ErrorIs(t, err, domain.ErrRateNotFound)
}

func TestResolveUnknownOrigin(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Resolve(context.Background(), domain.ResolveRequest{
		OriginPortID:      9999,
		DestinationPortID: f.lax.ID,
		ContainerTypeID:   f.hc40.ID,
		AsOf:              asOf,
	})
	assert.ErrorIs(t, err, domain.ErrOriginNotFound)
}

func TestResolveByCodes(t *testing.T) {
	f := newFixture(t)
	f.addRate(t, 2600, asOf.AddDate(0, -1, 0), nil)

	result, err := f.svc.ResolveByCodes(context.Background(), "SHA", "LAX", "40HQ", asOf)
	require.NoError(t, err)
	assert.Equal(t, "SHA", result.OriginPort.Code)
	assert.Equal(t, "LAX", result.DestinationPort.Code)
	assert.Equal(t, 2600.0, result.Rate.Price)
	assert.Equal(t, asOf, result.AsOf)
}

func TestResolveDefaultsAsOfToToday(t *testing.T) {
	f := newFixture(t)
	f.addRate(t, 1200, asOf.AddDate(0, -1, 0), nil)

	result, err := f.svc.Resolve(context.Background(), domain.ResolveRequest{
		OriginPortID:      f.sha.ID,
		DestinationPortID: f.lax.ID,
		ContainerTypeID:   f.hc40.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, asOf, result.AsOf)
}

func TestRecordAndListQueries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	errType := "route_not_found"
	require.NoError(t, f.svc.RecordQuery(ctx, &domain.Query{QueryText: "first", Succeeded: true}))
	require.NoError(t, f.svc.RecordQuery(ctx, &domain.Query{QueryText: "second", Succeeded: false, ErrorType: &errType}))

	items, err := f.svc.RecentQueries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].QueryText)
	require.NotNil(t, items[0].ErrorType)
	assert.Equal(t, "route_not_found", *items[0].ErrorType)
	assert.Equal(t, "first", items[1].QueryText)
}

func TestQueriesPageCursor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		require.NoError(t, f.svc.RecordQuery(ctx, &domain.Query{QueryText: fmt.Sprintf("query-%d", i), Succeeded: true}))
	}

	first, info, err := f.svc.QueriesPage(ctx, pagination.Pagination{PageSize: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "query-5", first[0].QueryText)
	assert.Equal(t, "query-4", first[1].QueryText)
	require.True(t, info.HasMore)

	second, info, err := f.svc.QueriesPage(ctx, pagination.Pagination{PageSize: 2, PageToken: info.NextPageToken})
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "query-3", second[0].QueryText)
	require.True(t, info.HasMore)

	last, info, err := f.svc.QueriesPage(ctx, pagination.Pagination{PageSize: 2, PageToken: info.NextPageToken})
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, "query-1", last[0].QueryText)
	assert.False(t, info.HasMore)
}
