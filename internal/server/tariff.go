package server

import (
	"time"

	"github.com/gin-gonic/gin"
	scheduledomain "github.com/harborline/seaquote/internal/schedule/domain"
	tariffdomain "github.com/harborline/seaquote/internal/tariff/domain"
)

const dateLayout = "2006-01-02"

type upsertRateRequest struct {
	RouteID         int64   `json:"route_id"`
	ContainerTypeID int64   `json:"container_type_id"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	EffectiveDate   string  `json:"effective_date"`
	ExpiryDate      string  `json:"expiry_date"`
}

func (s *Server) UpsertRate(c *gin.Context) {
	var req upsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	effectiveDate, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		AbortWithError(c, newValidationError("effective_date", "invalid_effective_date", "invalid date"))
		return
	}
	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		d, err := time.Parse(dateLayout, req.ExpiryDate)
		if err != nil {
			AbortWithError(c, newValidationError("expiry_date", "invalid_expiry_date", "invalid date"))
			return
		}
		expiryDate = &d
	}

	rate, err := s.tariffSvc.Upsert(c.Request.Context(), tariffdomain.UpsertRequest{
		RouteID:         req.RouteID,
		ContainerTypeID: req.ContainerTypeID,
		Price:           req.Price,
		Currency:        req.Currency,
		EffectiveDate:   effectiveDate,
		ExpiryDate:      expiryDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, rate)
}

func (s *Server) ListLatestRates(c *gin.Context) {
	rates, err := s.tariffSvc.Latest(c.Request.Context(), queryLimit(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, rates)
}

// ListRateSurcharges returns the surcharge lines attached to one rate.
func (s *Server) ListRateSurcharges(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	items, err := s.tariffSvc.Surcharges(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, items)
}

type upsertScheduleRequest struct {
	RouteID       int64  `json:"route_id"`
	VesselName    string `json:"vessel_name"`
	Voyage        string `json:"voyage"`
	DepartureDate string `json:"departure_date"`
	ArrivalDate   string `json:"arrival_date"`
}

func (s *Server) UpsertSchedule(c *gin.Context) {
	var req upsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	departureDate, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		AbortWithError(c, newValidationError("departure_date", "invalid_departure_date", "invalid date"))
		return
	}
	arrivalDate, err := time.Parse(dateLayout, req.ArrivalDate)
	if err != nil {
		AbortWithError(c, newValidationError("arrival_date", "invalid_arrival_date", "invalid date"))
		return
	}

	sched, err := s.scheduleSvc.Upsert(c.Request.Context(), scheduledomain.UpsertRequest{
		RouteID:       req.RouteID,
		VesselName:    req.VesselName,
		Voyage:        req.Voyage,
		DepartureDate: departureDate,
		ArrivalDate:   arrivalDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, sched)
}

func (s *Server) ListLatestSchedules(c *gin.Context) {
	schedules, err := s.scheduleSvc.Latest(c.Request.Context(), queryLimit(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, schedules)
}
