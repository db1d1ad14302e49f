package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateQuoteSheet(ctx context.Context, data QuoteSheetData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, "Ocean Freight Quotation", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Quote number: "+data.QuoteNumber, props.Text{Top: 0}),
			text.New("Date of issue: "+data.IssueDate, props.Text{Top: 4}),
			text.New("Valid until: "+data.ValidUntil, props.Text{Top: 8}),
			text.New("Prepared for: "+data.PreparedFor, props.Text{Top: 12}),
		),
		col.New(6),
	)

	m.AddRow(30,
		col.New(6).Add(
			text.New("Lane", props.Text{Style: fontstyle.Bold}),
			text.New("Origin: "+data.OriginPort, props.Text{Top: 5}),
			text.New("Destination: "+data.DestinationPort, props.Text{Top: 9}),
			text.New("Transit time: "+data.TransitTime, props.Text{Top: 13}),
		),
		col.New(6).Add(
			text.New("Rate", props.Text{Style: fontstyle.Bold}),
			text.New("Container: "+data.ContainerType, props.Text{Top: 5}),
			text.New("Base rate: "+data.Price+" "+data.Currency, props.Text{Top: 9}),
			text.New("Effective: "+data.EffectiveDate, props.Text{Top: 13}),
		),
	)

	m.AddRow(10,
		text.NewCol(4, "Vessel", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Voyage", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Departure", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(3, "Arrival", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	if len(data.Sailings) == 0 {
		m.AddRow(10,
			text.NewCol(12, "No sailings scheduled within 30 days.", props.Text{Size: 9}),
		)
	}
	for _, sailing := range data.Sailings {
		m.AddRow(10,
			text.NewCol(4, sailing.Vessel, props.Text{Size: 9}),
			text.NewCol(2, sailing.Voyage, props.Text{Size: 9}),
			text.NewCol(3, sailing.Departure, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(3, sailing.Arrival, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(15,
		text.NewCol(12, "Rates exclude local charges and surcharges unless stated otherwise.", props.Text{
			Size: 8,
			Top:  5,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
