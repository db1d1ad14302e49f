package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harborline/seaquote/internal/aiquote"
	"github.com/harborline/seaquote/internal/auth"
	authdomain "github.com/harborline/seaquote/internal/auth/domain"
	"github.com/harborline/seaquote/internal/auth/session"
	"github.com/harborline/seaquote/internal/booking"
	bookingdomain "github.com/harborline/seaquote/internal/booking/domain"
	"github.com/harborline/seaquote/internal/cache"
	"github.com/harborline/seaquote/internal/clock"
	"github.com/harborline/seaquote/internal/config"
	"github.com/harborline/seaquote/internal/containertype"
	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	"github.com/harborline/seaquote/internal/importer"
	"github.com/harborline/seaquote/internal/observability"
	obsmiddleware "github.com/harborline/seaquote/internal/observability/logger"
	obsmetrics "github.com/harborline/seaquote/internal/observability/metrics"
	obstracing "github.com/harborline/seaquote/internal/observability/tracing"
	"github.com/harborline/seaquote/internal/port"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
	"github.com/harborline/seaquote/internal/providers/pdf"
	"github.com/harborline/seaquote/internal/quote"
	quotedomain "github.com/harborline/seaquote/internal/quote/domain"
	"github.com/harborline/seaquote/internal/ratelimit"
	"github.com/harborline/seaquote/internal/route"
	routedomain "github.com/harborline/seaquote/internal/route/domain"
	"github.com/harborline/seaquote/internal/schedule"
	scheduledomain "github.com/harborline/seaquote/internal/schedule/domain"
	"github.com/harborline/seaquote/internal/tariff"
	tariffdomain "github.com/harborline/seaquote/internal/tariff/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	cache.Module,
	clock.Module,
	auth.Module,
	port.Module,
	containertype.Module,
	route.Module,
	tariff.Module,
	schedule.Module,
	quote.Module,
	aiquote.Module,
	booking.Module,
	importer.Module,
	pdf.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine   *gin.Engine
	cfg      config.Config
	db       *gorm.DB
	clock    clock.Clock
	authsvc  authdomain.Service
	sessions *session.Manager

	portSvc          portdomain.Service
	containerTypeSvc containertypedomain.Service
	routeRepo        routedomain.Repository
	tariffSvc        tariffdomain.Service
	scheduleSvc      scheduledomain.Service
	quoteSvc         quotedomain.Service
	aiquoteSvc       aiquote.Service
	bookingSvc       bookingdomain.Service
	importerSvc      importer.Service
	pdfProvider      pdf.Provider
	quoteLimiter     *ratelimit.QuoteLimiter
}

type ServerParams struct {
	fx.In

	Gin      *gin.Engine
	Cfg      config.Config
	DB       *gorm.DB
	Clock    clock.Clock
	Authsvc  authdomain.Service
	Sessions *session.Manager

	PortSvc          portdomain.Service
	ContainerTypeSvc containertypedomain.Service
	RouteRepo        routedomain.Repository
	TariffSvc        tariffdomain.Service
	ScheduleSvc      scheduledomain.Service
	QuoteSvc         quotedomain.Service
	AiquoteSvc       aiquote.Service
	BookingSvc       bookingdomain.Service
	ImporterSvc      importer.Service
	PDFProvider      pdf.Provider
	QuoteLimiter     *ratelimit.QuoteLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:           p.Gin,
		cfg:              p.Cfg,
		db:               p.DB,
		clock:            p.Clock,
		authsvc:          p.Authsvc,
		sessions:         p.Sessions,
		portSvc:          p.PortSvc,
		containerTypeSvc: p.ContainerTypeSvc,
		routeRepo:        p.RouteRepo,
		tariffSvc:        p.TariffSvc,
		scheduleSvc:      p.ScheduleSvc,
		quoteSvc:         p.QuoteSvc,
		aiquoteSvc:       p.AiquoteSvc,
		bookingSvc:       p.BookingSvc,
		importerSvc:      p.ImporterSvc,
		pdfProvider:      p.PDFProvider,
		quoteLimiter:     p.QuoteLimiter,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.AuthRequired(), s.Me)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// Reference data is readable by any signed-in user.
	api.GET("/ports", s.AuthRequired(), s.ListPorts)
	api.GET("/container_types", s.AuthRequired(), s.ListContainerTypes)

	// -------- Quotes --------
	api.POST("/quote", s.AuthRequired(), s.StructuredQuote)
	api.POST("/quote/text", s.AuthRequired(), s.QuoteRateLimit(), s.TextQuote)
	api.POST("/quote/sheet", s.AuthRequired(), s.QuoteSheet)

	// -------- Bookings --------
	api.POST("/bookings", s.AuthRequired(), s.CreateBooking)
	api.GET("/bookings", s.AuthRequired(), s.ListMyBookings)
	api.POST("/bookings/:id/cancel", s.AuthRequired(), s.CancelBooking)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin")

	admin.Use(s.AuthRequired())
	admin.Use(s.RequireRole(authdomain.RoleAdmin, authdomain.RoleOperator))

	admin.GET("/dashboard", s.GetDashboard)

	admin.GET("/ports", s.ListPorts)
	admin.POST("/ports", s.CreatePort)
	admin.GET("/ports/:id", s.GetPortByID)

	admin.GET("/container_types", s.ListContainerTypes)
	admin.POST("/container_types", s.CreateContainerType)
	admin.GET("/container_types/:id", s.GetContainerTypeByID)

	admin.GET("/routes", s.ListRoutes)
	admin.POST("/routes", s.CreateRoute)

	admin.GET("/rates", s.ListLatestRates)
	admin.POST("/rates", s.UpsertRate)
	admin.GET("/rates/:id/surcharges", s.ListRateSurcharges)

	admin.GET("/schedules", s.ListLatestSchedules)
	admin.POST("/schedules", s.UpsertSchedule)

	admin.POST("/imports/rates", s.ImportRates)
	admin.POST("/imports/schedules", s.ImportSchedules)

	admin.GET("/bookings", s.ListAllBookings)
	admin.POST("/bookings/:id/status", s.UpdateBookingStatus)

	admin.GET("/queries", s.ListRecentQueries)

	// User administration stays admin-only.
	admin.POST("/users", s.RequireRole(authdomain.RoleAdmin), s.CreateUser)
}
