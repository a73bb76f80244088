// Package renderer implements the external document-renderer collaborator:
// it turns a sent RepairQuote into a PDF with Maroto v2 and uploads it to
// the artifact store. It never touches quote state.
package renderer

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"assistec_quotes/internal/domain/entities"
	"assistec_quotes/internal/usecase/interfaces"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoQuoteRenderer renders a quote PDF and stores it as an artifact.
type MarotoQuoteRenderer struct {
	store IArtifactStore
}

var _ interfaces.IQuoteRenderer = (*MarotoQuoteRenderer)(nil)

func NewMarotoQuoteRenderer(store IArtifactStore) *MarotoQuoteRenderer {
	return &MarotoQuoteRenderer{store: store}
}

func (r *MarotoQuoteRenderer) Render(ctx context.Context, q entities.RepairQuote) (string, error) {
	pdfBytes, err := buildQuotePDF(q)
	if err != nil {
		return "", fmt.Errorf("render quote %s: %w", q.ID, err)
	}

	key := fmt.Sprintf("quotes/%s/%s.pdf", q.OrderID, q.ID)
	ref, err := r.store.Put(ctx, key, pdfBytes, "application/pdf")
	if err != nil {
		return "", fmt.Errorf("store quote document %s: %w", q.ID, err)
	}
	return ref, nil
}

func buildQuotePDF(q entities.RepairQuote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Repair Quote", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(partsHeaderRow())
	for _, p := range q.Breakdown.Parts {
		m.AddRows(partRow(p))
	}
	m.AddRows(laborRow(q.Breakdown))
	if q.Breakdown.ServiceFee.IsPositive() {
		m.AddRows(textRow("Service fee", money(q.Breakdown.ServiceFee, q.Breakdown.Currency)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(q.Breakdown)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(q))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func headerRow(q entities.RepairQuote) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("AssisTec Appliance Repair", props.Text{Size: 13, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New(fmt.Sprintf("Service order: %s", q.OrderID), props.Text{Top: 7, Size: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Quote %s", q.QuoteNumber), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
			text.New(fmt.Sprintf("Issued %s", q.CreatedAt.Format("2006-01-02")), props.Text{Top: 6, Size: 8, Align: align.Right, Color: colorGray}),
			text.New(fmt.Sprintf("Valid until %s", q.ExpiresAt.Format("2006-01-02")), props.Text{Top: 10, Size: 8, Align: align.Right, Color: colorGray}),
		),
	)
}

func partsHeaderRow() core.Row {
	return row.New(6).Add(
		text.NewCol(6, "Item", props.Text{Style: fontstyle.Bold, Size: 8}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(2, "Unit", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
	)
}

func partRow(p entities.PartLine) core.Row {
	lineTotal := p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
	return row.New(5).Add(
		text.NewCol(6, p.Name, props.Text{Size: 8}),
		text.NewCol(2, fmt.Sprintf("%d", p.Quantity), props.Text{Size: 8, Align: align.Right}),
		text.NewCol(2, p.UnitPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right}),
		text.NewCol(2, lineTotal.StringFixed(2), props.Text{Size: 8, Align: align.Right}),
	)
}

func laborRow(b entities.QuoteBreakdown) core.Row {
	desc := fmt.Sprintf("Labor (%s) %dh%02dm @ %s/h", b.Labor.Category, b.Labor.Hours, b.Labor.Minutes, b.Labor.HourlyRate.StringFixed(2))
	return row.New(5).Add(
		text.NewCol(10, desc, props.Text{Size: 8}),
		text.NewCol(2, b.LaborTotal.StringFixed(2), props.Text{Size: 8, Align: align.Right}),
	)
}

func textRow(label, value string) core.Row {
	return row.New(5).Add(
		text.NewCol(10, label, props.Text{Size: 8}),
		text.NewCol(2, value, props.Text{Size: 8, Align: align.Right}),
	)
}

func totalsRows(b entities.QuoteBreakdown) []core.Row {
	rows := []core.Row{
		totalRow("Subtotal", b.Subtotal, b.Currency, false),
	}
	if b.DiscountAmount.IsPositive() {
		rows = append(rows, totalRow("Discount", b.DiscountAmount.Neg(), b.Currency, false))
	}
	rows = append(rows,
		totalRow(fmt.Sprintf("Tax (%s%%)", b.Tax.RatePercent.String()), b.Tax.TaxAmount, b.Currency, false),
		totalRow("TOTAL", b.Total, b.Currency, true),
	)
	return rows
}

func totalRow(label string, amount decimal.Decimal, currency string, bold bool) core.Row {
	style := fontstyle.Normal
	size := 9.0
	if bold {
		style = fontstyle.Bold
		size = 11
	}
	return row.New(6).Add(
		text.NewCol(8, "", props.Text{}),
		text.NewCol(2, label, props.Text{Size: size, Style: style, Align: align.Right}),
		text.NewCol(2, money(amount, currency), props.Text{Size: size, Style: style, Align: align.Right}),
	)
}

func footerRow(q entities.RepairQuote) core.Row {
	note := fmt.Sprintf("This quote is valid until %s. Approval requires selecting a payment method.", q.ExpiresAt.Format("2006-01-02 15:04 MST"))
	return row.New(5).Add(
		text.NewCol(12, note, props.Text{Size: 7, Color: colorGray}),
	)
}

func money(v decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", currency, v.StringFixed(2))
}
