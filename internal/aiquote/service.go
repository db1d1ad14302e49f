package aiquote

import (
	"context"
	"errors"
	"time"

	"github.com/harborline/seaquote/internal/clock"
	"github.com/harborline/seaquote/internal/config"
	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
	quotedomain "github.com/harborline/seaquote/internal/quote/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Error type labels stored on audit rows and returned to clients.
const (
	ErrorTypeIncomplete    = "incomplete_query"
	ErrorTypeRouteNotFound = "route_not_found"
	ErrorTypeRateNotFound  = "rate_not_found"
)

// TextResponse is the success-shaped payload of a free-text quote. The
// transport status is 200 either way; Success signals whether a rate was
// actually found.
type TextResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	ErrorType string `json:"error_type,omitempty"`
}

type Service interface {
	// QuoteFromText runs the normalize/extract/resolve/format pipeline on
	// a raw user query. userID attributes the audit row and may be nil.
	QuoteFromText(ctx context.Context, text string, asOf time.Time, userID *int64) (*TextResponse, error)
}

type Params struct {
	fx.In

	Log            *zap.Logger
	Clock          clock.Clock
	Aliases        *config.AliasTableHolder
	Ports          portdomain.Service
	ContainerTypes containertypedomain.Service
	Quotes         quotedomain.Service
}

type service struct {
	log            *zap.Logger
	clock          clock.Clock
	aliases        *config.AliasTableHolder
	ports          portdomain.Service
	containerTypes containertypedomain.Service
	quotes         quotedomain.Service
}

func New(p Params) Service {
	return &service{
		log:            p.Log.Named("aiquote.service"),
		clock:          p.Clock,
		aliases:        p.Aliases,
		ports:          p.Ports,
		containerTypes: p.ContainerTypes,
		quotes:         p.Quotes,
	}
}

func (s *service) QuoteFromText(ctx context.Context, text string, asOf time.Time, userID *int64) (*TextResponse, error) {
	if asOf.IsZero() {
		asOf = clock.Today(s.clock)
	}

	aliases := s.aliases.Get()
	normalized := Normalize(text, aliases)

	ports, err := s.ports.List(ctx)
	if err != nil {
		return nil, err
	}
	containerTypes, err := s.containerTypes.List(ctx)
	if err != nil {
		return nil, err
	}

	ex := Extract(normalized, ports, containerTypes, aliases)
	if !ex.Complete() {
		s.log.Info("query incomplete",
			zap.Int("origin_candidates", len(ex.OriginCandidates)),
			zap.Int("destination_candidates", len(ex.DestinationCandidates)),
			zap.Int("container_candidates", len(ex.ContainerCandidates)),
		)
		return s.respond(ctx, text, userID, &TextResponse{
			Success:   false,
			Response:  FormatIncomplete(),
			ErrorType: ErrorTypeIncomplete,
		}), nil
	}

	result, err := s.quotes.Resolve(ctx, quotedomain.ResolveRequest{
		OriginPortID:      ex.Origin.ID,
		DestinationPortID: ex.Destination.ID,
		ContainerTypeID:   ex.ContainerType.ID,
		AsOf:              asOf,
	})
	switch {
	case err == nil:
		return s.respond(ctx, text, userID, &TextResponse{
			Success:  true,
			Response: FormatResult(result),
		}), nil
	case errors.Is(err, quotedomain.ErrRouteNotFound):
		return s.respond(ctx, text, userID, &TextResponse{
			Success:   false,
			Response:  FormatRouteNotFound(ex),
			ErrorType: ErrorTypeRouteNotFound,
		}), nil
	case errors.Is(err, quotedomain.ErrRateNotFound):
		return s.respond(ctx, text, userID, &TextResponse{
			Success:   false,
			Response:  FormatRateNotFound(ex),
			ErrorType: ErrorTypeRateNotFound,
		}), nil
	default:
		return nil, err
	}
}

// respond writes the audit row before handing the response back. Audit
// failures are logged inside RecordQuery and never block the reply.
func (s *service) respond(ctx context.Context, text string, userID *int64, resp *TextResponse) *TextResponse {
	var errType *string
	if resp.ErrorType != "" {
		errType = &resp.ErrorType
	}
	_ = s.quotes.RecordQuery(ctx, &quotedomain.Query{
		UserID:    userID,
		QueryText: text,
		Succeeded: resp.Success,
		ErrorType: errType,
	})
	return resp
}
