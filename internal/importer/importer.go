package importer

import (
	"context"
	"strconv"
	"time"

	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
	routedomain "github.com/harborline/seaquote/internal/route/domain"
	scheduledomain "github.com/harborline/seaquote/internal/schedule/domain"
	tariffdomain "github.com/harborline/seaquote/internal/tariff/domain"
	"github.com/rotisserie/eris"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Workbook column names. Spreadsheets come from the ops team's templates,
// so headers are Traditional Chinese.
const (
	colOriginCode      = "起運港代碼"
	colDestinationCode = "目的港代碼"
	colContainerCode   = "櫃型代碼"
	colPrice           = "基本運費"
	colCurrency        = "貨幣"
	colTransitTime     = "航程時間"
	colEffectiveDate   = "生效日期"
	colExpiryDate      = "失效日期"
	colVesselName      = "船名"
	colVoyage          = "航次"
	colDepartureDate   = "開航日期"
	colArrivalDate     = "到達日期"
)

// RowError reports why one spreadsheet row was skipped. Row numbers are
// 1-based as shown in spreadsheet software.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Summary is the per-file import outcome. Bad rows never abort the file;
// they land in Errors and the rest still import.
type Summary struct {
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors,omitempty"`
}

type Service interface {
	// ImportRates upserts base rates from a workbook, creating routes on
	// first sight of a new port pair.
	ImportRates(ctx context.Context, path string) (*Summary, error)
	// ImportSchedules upserts sailings. Unlike rates, schedules require
	// the route to exist already.
	ImportSchedules(ctx context.Context, path string) (*Summary, error)
}

type Params struct {
	fx.In

	DB                *gorm.DB
	Log               *zap.Logger
	PortRepo          portdomain.Repository
	ContainerTypeRepo containertypedomain.Repository
	RouteRepo         routedomain.Repository
	TariffService     tariffdomain.Service
	Schedules         scheduledomain.Service
}

type service struct {
	db             *gorm.DB
	log            *zap.Logger
	ports          portdomain.Repository
	containerTypes containertypedomain.Repository
	routes         routedomain.Repository
	tariffs        tariffdomain.Service
	schedules      scheduledomain.Service
}

func New(p Params) Service {
	return &service{
		db:             p.DB,
		log:            p.Log.Named("importer"),
		ports:          p.PortRepo,
		containerTypes: p.ContainerTypeRepo,
		routes:         p.RouteRepo,
		tariffs:        p.TariffService,
		schedules:      p.Schedules,
	}
}

func (s *service) ImportRates(ctx context.Context, path string) (*Summary, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, eris.New("importer: workbook has no data rows")
	}

	idx := columnIndex(rows[0])
	summary := &Summary{}

	for i, row := range rows[1:] {
		rowNum := i + 2

		route, ct, rowErr, err := s.resolveRateRow(ctx, row, idx)
		if err != nil {
			return nil, err
		}
		if rowErr != "" {
			summary.skip(rowNum, rowErr)
			continue
		}

		price, err := strconv.ParseFloat(cellAt(row, idx, colPrice), 64)
		if err != nil || price <= 0 {
			summary.skip(rowNum, "基本運費無效")
			continue
		}
		effectiveDate, err := parseDate(cellAt(row, idx, colEffectiveDate))
		if err != nil {
			summary.skip(rowNum, "生效日期無效")
			continue
		}
		var expiryDate *time.Time
		if raw := cellAt(row, idx, colExpiryDate); raw != "" {
			d, err := parseDate(raw)
			if err != nil {
				summary.skip(rowNum, "失效日期無效")
				continue
			}
			expiryDate = &d
		}

		_, err = s.tariffs.Upsert(ctx, tariffdomain.UpsertRequest{
			RouteID:         route.ID,
			ContainerTypeID: ct.ID,
			Price:           price,
			Currency:        cellAt(row, idx, colCurrency),
			EffectiveDate:   effectiveDate,
			ExpiryDate:      expiryDate,
		})
		if err != nil {
			summary.skip(rowNum, err.Error())
			continue
		}
		summary.Imported++
	}

	s.log.Info("rates imported",
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

// resolveRateRow looks up the ports and container type for a rate row and
// creates the route when the pair is new. The returned string is a
// user-facing skip reason; a non-nil error aborts the whole import.
func (s *service) resolveRateRow(ctx context.Context, row []string, idx map[string]int) (*routedomain.Route, *containertypedomain.ContainerType, string, error) {
	origin, err := s.ports.FindByCode(ctx, s.db, cellAt(row, idx, colOriginCode))
	if err != nil {
		return nil, nil, "", err
	}
	if origin == nil {
		return nil, nil, "找不到起運港代碼：" + cellAt(row, idx, colOriginCode), nil
	}
	destination, err := s.ports.FindByCode(ctx, s.db, cellAt(row, idx, colDestinationCode))
	if err != nil {
		return nil, nil, "", err
	}
	if destination == nil {
		return nil, nil, "找不到目的港代碼：" + cellAt(row, idx, colDestinationCode), nil
	}

	ct, err := s.containerTypes.FindByCode(ctx, s.db, cellAt(row, idx, colContainerCode))
	if err != nil {
		return nil, nil, "", err
	}
	if ct == nil {
		return nil, nil, "找不到櫃型代碼：" + cellAt(row, idx, colContainerCode), nil
	}

	route, err := s.routes.FindByPorts(ctx, s.db, origin.ID, destination.ID)
	if err != nil {
		return nil, nil, "", err
	}
	if route == nil {
		transitTime, err := strconv.Atoi(cellAt(row, idx, colTransitTime))
		if err != nil || transitTime <= 0 {
			return nil, nil, "新航線缺少有效的航程時間", nil
		}
		route = &routedomain.Route{
			OriginPortID:      origin.ID,
			DestinationPortID: destination.ID,
			TransitTime:       transitTime,
		}
		if err := s.routes.Create(ctx, s.db, route); err != nil {
			return nil, nil, "", err
		}
		s.log.Info("route created from import",
			zap.String("origin", origin.Code),
			zap.String("destination", destination.Code),
		)
	}

	return route, ct, "", nil
}

func (s *service) ImportSchedules(ctx context.Context, path string) (*Summary, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, eris.New("importer: workbook has no data rows")
	}

	idx := columnIndex(rows[0])
	summary := &Summary{}

	for i, row := range rows[1:] {
		rowNum := i + 2

		origin, err := s.ports.FindByCode(ctx, s.db, cellAt(row, idx, colOriginCode))
		if err != nil {
			return nil, err
		}
		if origin == nil {
			summary.skip(rowNum, "找不到起運港代碼："+cellAt(row, idx, colOriginCode))
			continue
		}
		destination, err := s.ports.FindByCode(ctx, s.db, cellAt(row, idx, colDestinationCode))
		if err != nil {
			return nil, err
		}
		if destination == nil {
			summary.skip(rowNum, "找不到目的港代碼："+cellAt(row, idx, colDestinationCode))
			continue
		}

		route, err := s.routes.FindByPorts(ctx, s.db, origin.ID, destination.ID)
		if err != nil {
			return nil, err
		}
		if route == nil {
			summary.skip(rowNum, "找不到從"+origin.Code+"到"+destination.Code+"的航線")
			continue
		}

		departureDate, err := parseDate(cellAt(row, idx, colDepartureDate))
		if err != nil {
			summary.skip(rowNum, "開航日期無效")
			continue
		}
		arrivalDate, err := parseDate(cellAt(row, idx, colArrivalDate))
		if err != nil {
			summary.skip(rowNum, "到達日期無效")
			continue
		}

		_, err = s.schedules.Upsert(ctx, scheduledomain.UpsertRequest{
			RouteID:       route.ID,
			VesselName:    cellAt(row, idx, colVesselName),
			Voyage:        cellAt(row, idx, colVoyage),
			DepartureDate: departureDate,
			ArrivalDate:   arrivalDate,
		})
		if err != nil {
			summary.skip(rowNum, err.Error())
			continue
		}
		summary.Imported++
	}

	s.log.Info("schedules imported",
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

func (s *Summary) skip(row int, reason string) {
	s.Skipped++
	s.Errors = append(s.Errors, RowError{Row: row, Reason: reason})
}

// Spreadsheet tools export dates in a few shapes. Slashed and datetime
// forms show up when cells lose their date formatting.
var dateLayouts = []string{"2006-01-02", "2006/01/02", "2006-01-02 15:04:05", "01-02-06"}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, eris.Errorf("importer: unrecognized date %q", raw)
}
