// Package pdf renders quote sheets customers can hand to their shippers.
package pdf

import (
	"context"
	"io"
)

type Provider interface {
	GenerateQuoteSheet(ctx context.Context, data QuoteSheetData) (io.Reader, error)
}

// QuoteSheetData is the flattened, display-ready form of a resolved quote.
// The built-in PDF fonts only cover Latin glyphs, so callers pass port and
// container codes rather than localized names.
type QuoteSheetData struct {
	QuoteNumber     string
	IssueDate       string
	ValidUntil      string
	PreparedFor     string
	OriginPort      string
	DestinationPort string
	ContainerType   string
	TransitTime     string
	Price           string
	Currency        string
	EffectiveDate   string
	Sailings        []SailingLine
}

type SailingLine struct {
	Vessel    string
	Voyage    string
	Departure string
	Arrival   string
}
