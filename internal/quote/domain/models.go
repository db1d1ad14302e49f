// Package domain contains quote resolution types.
package domain

import (
	"errors"
	"time"

	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
	routedomain "github.com/harborline/seaquote/internal/route/domain"
	scheduledomain "github.com/harborline/seaquote/internal/schedule/domain"
	tariffdomain "github.com/harborline/seaquote/internal/tariff/domain"
)

// Result is a fully resolved quote: the route, the base rate in effect
// on the as-of date, and up to three upcoming sailings.
type Result struct {
	OriginPort      portdomain.Port                 `json:"origin_port"`
	DestinationPort portdomain.Port                 `json:"destination_port"`
	ContainerType   containertypedomain.ContainerType `json:"container_type"`
	Route           routedomain.Route               `json:"route"`
	Rate            tariffdomain.BaseRate           `json:"rate"`
	Schedules       []scheduledomain.VesselSchedule `json:"schedules"`
	AsOf            time.Time                       `json:"as_of"`
}

// Query is an audit record of a quote request. Free-text requests store
// the raw query; structured requests store a synthetic description.
type Query struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    *int64    `json:"user_id,omitempty" gorm:"index"`
	QueryText string    `json:"query_text" gorm:"type:varchar(500);not null"`
	Succeeded bool      `json:"succeeded" gorm:"not null"`
	ErrorType *string   `json:"error_type,omitempty" gorm:"type:varchar(50)"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Query) TableName() string { return "quote_queries" }

// Resolution errors. All three are recoverable conditions surfaced to
// callers as advisory responses, never as transport failures.
var (
	ErrOriginNotFound        = errors.New("origin_port_not_found")
	ErrDestinationNotFound   = errors.New("destination_port_not_found")
	ErrContainerTypeNotFound = errors.New("container_type_not_found")
	ErrRouteNotFound         = errors.New("quote_route_not_found")
	ErrRateNotFound          = errors.New("quote_rate_not_found")
)
