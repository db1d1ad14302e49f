package domain

import (
	"context"
	"time"

	"github.com/harborline/seaquote/pkg/db/pagination"
)

// ScheduleWindowDays bounds how far ahead sailings are offered on a quote.
const ScheduleWindowDays = 30

// MaxSchedules is the most sailings attached to a single quote.
const MaxSchedules = 3

type Service interface {
	// Resolve produces a quote for a (origin, destination, container type)
	// triple, identified by port and container type IDs. All reads run
	// against a single transaction so the quote is internally consistent.
	Resolve(ctx context.Context, req ResolveRequest) (*Result, error)
	// ResolveByCodes resolves the identifiers first, then quotes.
	ResolveByCodes(ctx context.Context, originCode, destinationCode, containerTypeCode string, asOf time.Time) (*Result, error)
	// RecordQuery persists an audit row for a quote request, free-text
	// or structured.
	RecordQuery(ctx context.Context, q *Query) error
	RecentQueries(ctx context.Context, limit int) ([]Query, error)
	// QueriesPage walks the audit log newest-first with cursor pagination.
	QueriesPage(ctx context.Context, p pagination.Pagination) ([]Query, *pagination.PageInfo, error)
}

type ResolveRequest struct {
	OriginPortID      int64     `json:"origin_port_id"`
	DestinationPortID int64     `json:"destination_port_id"`
	ContainerTypeID   int64     `json:"container_type_id"`
	AsOf              time.Time `json:"as_of"`
}
