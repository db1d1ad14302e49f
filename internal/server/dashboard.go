package server

import (
	"github.com/gin-gonic/gin"
	quotedomain "github.com/harborline/seaquote/internal/quote/domain"
	scheduledomain "github.com/harborline/seaquote/internal/schedule/domain"
	tariffdomain "github.com/harborline/seaquote/internal/tariff/domain"
)

type dashboard struct {
	Ports           int64                           `json:"ports"`
	ContainerTypes  int64                           `json:"container_types"`
	Rates           int64                           `json:"rates"`
	Schedules       int64                           `json:"schedules"`
	PendingBookings int64                           `json:"pending_bookings"`
	LatestRates     []tariffdomain.BaseRate         `json:"latest_rates"`
	NextSailings    []scheduledomain.VesselSchedule `json:"next_sailings"`
	RecentQueries   []quotedomain.Query             `json:"recent_queries"`
}

func (s *Server) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	var d dashboard

	ports, err := s.portSvc.List(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	d.Ports = int64(len(ports))

	containerTypes, err := s.containerTypeSvc.List(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	d.ContainerTypes = int64(len(containerTypes))

	if d.Rates, err = s.tariffSvc.Count(ctx); err != nil {
		AbortWithError(c, err)
		return
	}
	if d.Schedules, err = s.scheduleSvc.Count(ctx); err != nil {
		AbortWithError(c, err)
		return
	}
	if d.PendingBookings, err = s.bookingSvc.PendingCount(ctx); err != nil {
		AbortWithError(c, err)
		return
	}

	if d.LatestRates, err = s.tariffSvc.Latest(ctx, 5); err != nil {
		AbortWithError(c, err)
		return
	}
	if d.NextSailings, err = s.scheduleSvc.Latest(ctx, 5); err != nil {
		AbortWithError(c, err)
		return
	}
	if d.RecentQueries, err = s.quoteSvc.RecentQueries(ctx, 5); err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, d)
}
