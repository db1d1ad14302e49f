package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
	routedomain "github.com/harborline/seaquote/internal/route/domain"
)

func (s *Server) ListPorts(c *gin.Context) {
	ports, err := s.portSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, ports)
}

func (s *Server) CreatePort(c *gin.Context) {
	var req portdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	created, err := s.portSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, created)
}

func (s *Server) GetPortByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	found, err := s.portSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, found)
}

func (s *Server) ListContainerTypes(c *gin.Context) {
	containerTypes, err := s.containerTypeSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, containerTypes)
}

func (s *Server) CreateContainerType(c *gin.Context) {
	var req containertypedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	created, err := s.containerTypeSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, created)
}

func (s *Server) GetContainerTypeByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	found, err := s.containerTypeSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, found)
}

func (s *Server) ListRoutes(c *gin.Context) {
	routes, err := s.routeRepo.FindAll(c.Request.Context(), s.db)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, routes)
}

type createRouteRequest struct {
	OriginPortID      int64  `json:"origin_port_id"`
	DestinationPortID int64  `json:"destination_port_id"`
	TransitTime       int    `json:"transit_time"`
	Description       string `json:"description"`
}

func (s *Server) CreateRoute(c *gin.Context) {
	var req createRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.OriginPortID <= 0 || req.DestinationPortID <= 0 || req.TransitTime <= 0 {
		AbortWithError(c, invalidRequestError())
		return
	}

	existing, err := s.routeRepo.FindByPorts(c.Request.Context(), s.db, req.OriginPortID, req.DestinationPortID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if existing != nil {
		AbortWithError(c, ErrConflict)
		return
	}

	route := &routedomain.Route{
		OriginPortID:      req.OriginPortID,
		DestinationPortID: req.DestinationPortID,
		TransitTime:       req.TransitTime,
	}
	if desc := req.Description; desc != "" {
		route.Description = &desc
	}
	if err := s.routeRepo.Create(c.Request.Context(), s.db, route); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, route)
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, newValidationError("id", "invalid_id", "invalid id")
	}
	return id, nil
}
