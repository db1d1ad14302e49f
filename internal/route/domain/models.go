// Package domain contains core types for shipping routes.
package domain

import (
	"errors"
	"time"
)

// Route is a directed origin/destination port pair with a nominal transit
// time in days. Unique per ordered pair; created lazily by imports when a
// new pair is first seen.
type Route struct {
	ID                int64     `json:"id" gorm:"primaryKey"`
	OriginPortID      int64     `json:"origin_port_id" gorm:"not null;index:ux_routes_ports,unique,priority:1"`
	DestinationPortID int64     `json:"destination_port_id" gorm:"not null;index:ux_routes_ports,unique,priority:2"`
	TransitTime       int       `json:"transit_time" gorm:"not null"`
	Description       *string   `json:"description,omitempty" gorm:"type:varchar(200)"`
	CreatedAt         time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Route) TableName() string { return "routes" }

var ErrNotFound = errors.New("route_not_found")
