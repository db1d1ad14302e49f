package server

import (
	"github.com/gin-gonic/gin"
	bookingdomain "github.com/harborline/seaquote/internal/booking/domain"
)

func (s *Server) CreateBooking(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req bookingdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	booking, err := s.bookingSvc.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, booking)
}

func (s *Server) ListMyBookings(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	bookings, err := s.bookingSvc.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, bookings)
}

// CancelBooking lets a customer withdraw their own booking. Operators use
// the admin status endpoint instead.
func (s *Server) CancelBooking(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	booking, err := s.bookingSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if booking.UserID != user.ID && !user.CanOperate() {
		AbortWithError(c, ErrForbidden)
		return
	}

	updated, err := s.bookingSvc.UpdateStatus(c.Request.Context(), id, bookingdomain.StatusCancelled)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, updated)
}

func (s *Server) ListAllBookings(c *gin.Context) {
	bookings, err := s.bookingSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, bookings)
}

type updateBookingStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) UpdateBookingStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	updated, err := s.bookingSvc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, updated)
}
