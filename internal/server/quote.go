package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harborline/seaquote/internal/clock"
	"github.com/harborline/seaquote/internal/providers/pdf"
	quotedomain "github.com/harborline/seaquote/internal/quote/domain"
	"github.com/harborline/seaquote/pkg/db/pagination"
)

// structuredQuoteRequest addresses the lane either by IDs or by codes;
// either triple must be complete.
type structuredQuoteRequest struct {
	OriginPortID      int64  `json:"origin_port_id"`
	DestinationPortID int64  `json:"destination_port_id"`
	ContainerTypeID   int64  `json:"container_type_id"`
	OriginPort        string `json:"origin_port"`
	DestinationPort   string `json:"destination_port"`
	ContainerType     string `json:"container_type"`
	AsOf              string `json:"as_of"`
}

func (r structuredQuoteRequest) byID() bool {
	return r.OriginPortID > 0 && r.DestinationPortID > 0 && r.ContainerTypeID > 0
}

func (r structuredQuoteRequest) byCode() bool {
	return r.OriginPort != "" && r.DestinationPort != "" && r.ContainerType != ""
}

func (r structuredQuoteRequest) auditText() string {
	if r.byID() {
		return fmt.Sprintf("structured origin_port_id=%d destination_port_id=%d container_type_id=%d",
			r.OriginPortID, r.DestinationPortID, r.ContainerTypeID)
	}
	return fmt.Sprintf("structured origin=%s destination=%s container=%s",
		r.OriginPort, r.DestinationPort, r.ContainerType)
}

type structuredQuoteResponse struct {
	Success   bool                `json:"success"`
	Data      *quotedomain.Result `json:"data,omitempty"`
	ErrorType string              `json:"error_type,omitempty"`
	Message   string              `json:"message,omitempty"`
}

// StructuredQuote resolves a quote from explicit identifiers. Missing data
// comes back 200 with success:false; only malformed requests are rejected.
// Every resolution, hit or miss, lands in the quote_queries audit log.
func (s *Server) StructuredQuote(c *gin.Context) {
	req, asOf, ok := s.bindQuoteRequest(c)
	if !ok {
		return
	}

	result, err := s.resolveQuote(c, req, asOf)
	if err != nil {
		if errorType, message, ok := quoteMiss(err); ok {
			s.auditStructuredQuote(c, req, false, errorType)
			c.JSON(http.StatusOK, structuredQuoteResponse{
				Success:   false,
				ErrorType: errorType,
				Message:   message,
			})
			return
		}
		AbortWithError(c, err)
		return
	}

	s.auditStructuredQuote(c, req, true, "")
	c.JSON(http.StatusOK, structuredQuoteResponse{Success: true, Data: result})
}

func (s *Server) resolveQuote(c *gin.Context, req structuredQuoteRequest, asOf time.Time) (*quotedomain.Result, error) {
	if req.byID() {
		return s.quoteSvc.Resolve(c.Request.Context(), quotedomain.ResolveRequest{
			OriginPortID:      req.OriginPortID,
			DestinationPortID: req.DestinationPortID,
			ContainerTypeID:   req.ContainerTypeID,
			AsOf:              asOf,
		})
	}
	return s.quoteSvc.ResolveByCodes(c.Request.Context(), req.OriginPort, req.DestinationPort, req.ContainerType, asOf)
}

// auditStructuredQuote mirrors the free-text audit path. Failures are
// already logged by RecordQuery and never block the response.
func (s *Server) auditStructuredQuote(c *gin.Context, req structuredQuoteRequest, succeeded bool, errorType string) {
	var userID *int64
	if user := currentUser(c); user != nil {
		userID = &user.ID
	}
	var errType *string
	if errorType != "" {
		errType = &errorType
	}
	_ = s.quoteSvc.RecordQuery(c.Request.Context(), &quotedomain.Query{
		UserID:    userID,
		QueryText: req.auditText(),
		Succeeded: succeeded,
		ErrorType: errType,
	})
}

type textQuoteRequest struct {
	Query string `json:"query"`
}

func (s *Server) TextQuote(c *gin.Context) {
	var req textQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		AbortWithError(c, newValidationError("query", "invalid_query", "query text is required"))
		return
	}

	var userID *int64
	if user := currentUser(c); user != nil {
		userID = &user.ID
	}

	resp, err := s.aiquoteSvc.QuoteFromText(c.Request.Context(), req.Query, time.Time{}, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QuoteSheet renders the resolved quote as a downloadable PDF.
func (s *Server) QuoteSheet(c *gin.Context) {
	req, asOf, ok := s.bindQuoteRequest(c)
	if !ok {
		return
	}

	result, err := s.resolveQuote(c, req, asOf)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	user := currentUser(c)
	preparedFor := ""
	if user != nil {
		preparedFor = user.Username
	}

	sheet := pdf.QuoteSheetData{
		QuoteNumber:     fmt.Sprintf("Q-%s-%d", result.AsOf.Format("20060102"), result.Rate.ID),
		IssueDate:       clock.Today(s.clock).Format(dateLayout),
		ValidUntil:      result.AsOf.AddDate(0, 0, quotedomain.ScheduleWindowDays).Format(dateLayout),
		PreparedFor:     preparedFor,
		OriginPort:      result.OriginPort.Code,
		DestinationPort: result.DestinationPort.Code,
		ContainerType:   result.ContainerType.Code,
		TransitTime:     strconv.Itoa(result.Route.TransitTime) + " days",
		Price:           strconv.FormatFloat(result.Rate.Price, 'f', 2, 64),
		Currency:        result.Rate.Currency,
		EffectiveDate:   result.Rate.EffectiveDate.Format(dateLayout),
	}
	for _, sailing := range result.Schedules {
		sheet.Sailings = append(sheet.Sailings, pdf.SailingLine{
			Vessel:    sailing.VesselName,
			Voyage:    sailing.Voyage,
			Departure: sailing.DepartureDate.Format(dateLayout),
			Arrival:   sailing.ArrivalDate.Format(dateLayout),
		})
	}

	doc, err := s.pdfProvider.GenerateQuoteSheet(c.Request.Context(), sheet)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="quote-sheet.pdf"`)
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, doc)
}

func (s *Server) ListRecentQueries(c *gin.Context) {
	var p pagination.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	queries, pageInfo, err := s.quoteSvc.QueriesPage(c.Request.Context(), p)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": queries, "page_info": pageInfo})
}

func (s *Server) bindQuoteRequest(c *gin.Context) (structuredQuoteRequest, time.Time, bool) {
	var req structuredQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return structuredQuoteRequest{}, time.Time{}, false
	}
	if !req.byID() && !req.byCode() {
		AbortWithError(c, invalidRequestError())
		return structuredQuoteRequest{}, time.Time{}, false
	}

	var asOf time.Time
	if req.AsOf != "" {
		parsed, err := time.Parse(dateLayout, req.AsOf)
		if err != nil {
			AbortWithError(c, newValidationError("as_of", "invalid_as_of", "invalid date"))
			return structuredQuoteRequest{}, time.Time{}, false
		}
		asOf = parsed
	}

	return req, asOf, true
}

// quoteMiss maps recoverable resolution misses to their response labels.
func quoteMiss(err error) (string, string, bool) {
	switch {
	case errors.Is(err, quotedomain.ErrOriginNotFound):
		return "origin_port_not_found", "origin port not found", true
	case errors.Is(err, quotedomain.ErrDestinationNotFound):
		return "destination_port_not_found", "destination port not found", true
	case errors.Is(err, quotedomain.ErrContainerTypeNotFound):
		return "container_type_not_found", "container type not found", true
	case errors.Is(err, quotedomain.ErrRouteNotFound):
		return "route_not_found", "no route serves this port pair", true
	case errors.Is(err, quotedomain.ErrRateNotFound):
		return "rate_not_found", "no rate in effect for this lane and container type", true
	default:
		return "", "", false
	}
}
