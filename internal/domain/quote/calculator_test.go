package quote_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
	"github.com/tu-usuario/quotation-pro/internal/domain/quote"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func item(name, qty, price string) entity.QuotationItem {
	return entity.QuotationItem{Name: name, Quantity: d(qty), Price: d(price)}
}

// ──────────────────────────────────────────────────────────────────────────────
// CalculateTotals
// ──────────────────────────────────────────────────────────────────────────────

// Sin líneas, los tres montos son cero.
func TestCalculateTotals_ListaVacia(t *testing.T) {
	totals := quote.CalculateTotals(nil)

	assert.True(t, totals.Subtotal.IsZero(), "subtotal debe ser cero")
	assert.True(t, totals.Tax.IsZero(), "impuesto debe ser cero")
	assert.True(t, totals.Total.IsZero(), "total debe ser cero")
}

// Subtotal = Σ(precio × cantidad), impuesto = 10% del subtotal, total = suma.
func TestCalculateTotals_Formulas(t *testing.T) {
	totals := quote.CalculateTotals([]entity.QuotationItem{
		item("Diseño", "2", "100"),
	})

	assert.True(t, d("200").Equal(totals.Subtotal), "subtotal: esperaba 200, obtuve %s", totals.Subtotal)
	assert.True(t, d("20").Equal(totals.Tax), "impuesto: esperaba 20, obtuve %s", totals.Tax)
	assert.True(t, d("220").Equal(totals.Total), "total: esperaba 220, obtuve %s", totals.Total)
}

// Agregar una línea de 50×1 a la cotización de 200 la lleva a 250/25/275.
func TestCalculateTotals_AgregarLinea(t *testing.T) {
	items := []entity.QuotationItem{
		item("Diseño", "2", "100"),
	}
	before := quote.CalculateTotals(items)
	require.True(t, d("220").Equal(before.Total))

	items = append(items, item("Hosting", "1", "50"))
	after := quote.CalculateTotals(items)

	assert.True(t, d("250").Equal(after.Subtotal), "subtotal: esperaba 250, obtuve %s", after.Subtotal)
	assert.True(t, d("25").Equal(after.Tax), "impuesto: esperaba 25, obtuve %s", after.Tax)
	assert.True(t, d("275").Equal(after.Total), "total: esperaba 275, obtuve %s", after.Total)
}

// Cantidades fraccionarias (horas) se multiplican sin redondeo binario.
func TestCalculateTotals_CantidadFraccionaria(t *testing.T) {
	totals := quote.CalculateTotals([]entity.QuotationItem{
		item("Consultoría", "1.5", "80"),
	})

	assert.True(t, d("120").Equal(totals.Subtotal))
	assert.True(t, d("12").Equal(totals.Tax))
	assert.True(t, d("132").Equal(totals.Total))
}

// Función pura: recalcular sobre las mismas líneas da el mismo resultado.
func TestCalculateTotals_Idempotente(t *testing.T) {
	items := []entity.QuotationItem{
		item("Diseño", "2", "100"),
		item("Hosting", "1", "50"),
	}
	first := quote.CalculateTotals(items)
	second := quote.CalculateTotals(items)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Tax.Equal(second.Tax))
	assert.True(t, first.Total.Equal(second.Total))
}

// ──────────────────────────────────────────────────────────────────────────────
// SnapshotItems
// ──────────────────────────────────────────────────────────────────────────────

// El snapshot copia nombre, descripción, cantidad y precio, y referencia al
// ítem de origen; el ID de línea queda vacío para la capa de persistencia.
func TestSnapshotItems_CopiaCampos(t *testing.T) {
	source := []*entity.ServiceItem{
		{ID: "item-1", Name: "Diseño", Description: "Mockups", Quantity: d("2"), Price: d("100")},
		{ID: "item-2", Name: "Hosting", Quantity: d("1"), Price: d("50")},
	}

	lines := quote.SnapshotItems("quote-1", source)
	require.Len(t, lines, 2)

	assert.Equal(t, "quote-1", lines[0].QuotationID)
	assert.Equal(t, "item-1", lines[0].ServiceItemID)
	assert.Equal(t, "Diseño", lines[0].Name)
	assert.Equal(t, "Mockups", lines[0].Description)
	assert.True(t, d("2").Equal(lines[0].Quantity))
	assert.True(t, d("100").Equal(lines[0].Price))
	assert.Empty(t, lines[0].ID, "el ID de línea lo asigna la persistencia")

	// Mutar el ítem de origen no afecta la copia ya tomada.
	source[0].Price = d("999")
	assert.True(t, d("100").Equal(lines[0].Price), "la copia debe ser independiente del origen")
}

func TestSnapshotItems_SinItems(t *testing.T) {
	lines := quote.SnapshotItems("quote-1", nil)
	assert.Empty(t, lines)
}
