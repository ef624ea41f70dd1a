// Package pdf implementa el documento imprimible de la cotización.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  COTIZACIÓN + Fecha + Válida hasta      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Email                             │
//	│  CLIENTE: Nombre + empresa + contacto                        │
//	│  PROYECTO: Nombre + descripción                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Subtotal               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto (10%) / TOTAL                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTAS / TÉRMINOS Y CONDICIONES                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

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

	"github.com/tu-usuario/quotation-pro/internal/application/quotes"
	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa quotes.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Generate genera el PDF de la cotización y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(doc quotes.QuotationDocument) ([]byte, error) {
	companyName := "Cotización"
	if doc.Company != nil && doc.Company.Name != "" {
		companyName = doc.Company.Name
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+doc.Quotation.ID, true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc.Quotation, companyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if doc.Company != nil {
		m.AddRows(emisorRow(doc.Company))
	}
	m.AddRows(clienteRow(doc.Customer))
	m.AddRows(proyectoRow(doc.Project))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(doc.Items, doc.Quotation.Currency) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc.Quotation))

	for _, r := range footerRows(doc.Quotation) {
		m.AddRows(r)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y rótulo COTIZACIÓN + fechas (der).
func headerRow(q *entity.Quotation, companyName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+q.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Válida hasta: "+q.ValidUntil.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// emisorRow: datos de la empresa emisora.
func emisorRow(company *entity.CompanySettings) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("EMISOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(company.Address, "—"),
				nonEmpty(company.Phone, "—"),
				nonEmpty(company.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// clienteRow: datos del cliente.
func clienteRow(customer *entity.Customer) core.Row {
	name, detail := "—", "—"
	if customer != nil {
		name = customer.Name
		if customer.Company != "" {
			name = fmt.Sprintf("%s (%s)", customer.Name, customer.Company)
		}
		detail = fmt.Sprintf("Email: %s   |   Tel: %s   |   Dirección: %s",
			nonEmpty(customer.Email, "—"),
			nonEmpty(customer.Phone, "—"),
			nonEmpty(customer.Address, "—"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(detail, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// proyectoRow: proyecto cotizado.
func proyectoRow(project *entity.Project) core.Row {
	name, desc := "—", ""
	if project != nil {
		name = project.Name
		desc = project.Description
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROYECTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
			text.New(desc, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción del servicio", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la cotización.
func tableItemRows(items []entity.QuotationItem, currency string) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		desc := it.Name
		if it.Description != "" {
			desc = it.Name + " — " + it.Description
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				desc,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(it.Price, currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(it.Price.Mul(it.Quantity), currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(q *entity.Quotation) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label("Impuesto (10%):"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(formatMoney(q.Subtotal, q.Currency)),
			value(formatMoney(q.Tax, q.Currency)),
			grandValue(formatMoney(q.Total, q.Currency)),
		),
	)
}

// footerRows: notas y términos, solo si existen.
func footerRows(q *entity.Quotation) []core.Row {
	var rows []core.Row
	section := func(title, body string) {
		rows = append(rows,
			row.New(3),
			row.New(6).Add(col.New(12).Add(
				text.New(title, props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
			)),
			row.New(10).Add(col.New(12).Add(
				text.New(body, props.Text{Size: 8, Color: colorGray, Top: 1}),
			)),
		)
	}
	if q.Notes != "" {
		section("NOTAS", q.Notes)
	}
	if q.Terms != "" {
		section("TÉRMINOS Y CONDICIONES", q.Terms)
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney presenta un monto con separador de miles y dos decimales,
// prefijado con la moneda. Ej: 12500.5 USD → "USD 12,500.50"
func formatMoney(d decimal.Decimal, currency string) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, intPart[i])
	}
	out := string(buf) + "." + fracPart
	if neg {
		out = "-" + out
	}
	return currency + " " + out
}
