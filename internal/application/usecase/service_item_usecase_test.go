package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/quotation-pro/internal/application/dto"
	"github.com/tu-usuario/quotation-pro/internal/application/usecase"
	"github.com/tu-usuario/quotation-pro/internal/domain"
	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
)

func newServiceItemUC(w *world) *usecase.ServiceItemUseCase {
	return usecase.NewServiceItemUseCase(w.items, w.projects, w.tx, testLogger())
}

// ──────────────────────────────────────────────────────────────────────────────
// Sincronización de la cotización tras mutaciones de ítems
// ──────────────────────────────────────────────────────────────────────────────

// Crear un ítem en un proyecto cotizado reconstruye las líneas y recalcula
// los totales: 100×2 = 200/20/220, y con el ítem nuevo de 50×1 queda 250/25/275.
func TestServiceItemCreate_SincronizaCotizacion(t *testing.T) {
	w := newWorld()
	w.seedCustomer("c1")
	w.seedProject("p1", "c1")
	w.seedItem("i1", "p1", "2", "100")
	w.seedQuotation("q1", "p1", "c1", entity.QuotationItem{ServiceItemID: "i1", Name: "Diseño", Quantity: d("2"), Price: d("100")})

	uc := newServiceItemUC(w)
	_, err := uc.Create(context.Background(), dto.CreateServiceItemRequest{
		ProjectID: "p1", Name: "Hosting", Quantity: d("1"), Price: d("50"),
	})
	require.NoError(t, err)

	q, err := w.quotes.GetByID("q1")
	require.NoError(t, err)
	assert.True(t, d("250").Equal(q.Subtotal), "subtotal: esperaba 250, obtuve %s", q.Subtotal)
	assert.True(t, d("25").Equal(q.Tax), "impuesto: esperaba 25, obtuve %s", q.Tax)
	assert.True(t, d("275").Equal(q.Total), "total: esperaba 275, obtuve %s", q.Total)

	lines, _ := w.quotes.GetItems("q1")
	assert.Len(t, lines, 2, "la cotización debe reflejar los dos ítems")
}

// Cambiar precio o cantidad de un ítem recalcula los totales de la cotización.
func TestServiceItemUpdate_RecalculaTotales(t *testing.T) {
	w := newWorld()
	w.seedCustomer("c1")
	w.seedProject("p1", "c1")
	w.seedItem("i1", "p1", "2", "100")
	w.seedQuotation("q1", "p1", "c1", entity.QuotationItem{ServiceItemID: "i1", Name: "Diseño", Quantity: d("2"), Price: d("100")})

	uc := newServiceItemUC(w)
	_, err := uc.Update(context.Background(), "i1", dto.UpdateServiceItemRequest{
		Name: "Diseño", Quantity: d("3"), Price: d("100"),
	})
	require.NoError(t, err)

	q, _ := w.quotes.GetByID("q1")
	assert.True(t, d("300").Equal(q.Subtotal))
	assert.True(t, d("30").Equal(q.Tax))
	assert.True(t, d("330").Equal(q.Total))

	lines, _ := w.quotes.GetItems("q1")
	require.Len(t, lines, 1)
	assert.True(t, d("3").Equal(lines[0].Quantity), "la línea debe reflejar la cantidad nueva")
}

// Borrar el último ítem deja la cotización viva pero con cero líneas y
// totales en cero.
func TestServiceItemDelete_UltimoItemDejaTotalesEnCero(t *testing.T) {
	w := newWorld()
	w.seedCustomer("c1")
	w.seedProject("p1", "c1")
	w.seedItem("i1", "p1", "2", "100")
	w.seedQuotation("q1", "p1", "c1", entity.QuotationItem{ServiceItemID: "i1", Name: "Diseño", Quantity: d("2"), Price: d("100")})

	uc := newServiceItemUC(w)
	require.NoError(t, uc.Delete(context.Background(), "i1"))

	q, _ := w.quotes.GetByID("q1")
	require.NotNil(t, q, "la cotización no se borra al quedarse sin ítems")
	assert.True(t, q.Subtotal.IsZero())
	assert.True(t, q.Tax.IsZero())
	assert.True(t, q.Total.IsZero())

	lines, _ := w.quotes.GetItems("q1")
	assert.Empty(t, lines)
}

// Mutar ítems de un proyecto sin cotización no crea nada ni falla.
func TestServiceItemMutacion_SinCotizacionNoHaceNada(t *testing.T) {
	w := newWorld()
	w.seedCustomer("c1")
	w.seedProject("p1", "c1")

	uc := newServiceItemUC(w)
	_, err := uc.Create(context.Background(), dto.CreateServiceItemRequest{
		ProjectID: "p1", Name: "Diseño", Quantity: d("1"), Price: d("100"),
	})
	require.NoError(t, err)

	assert.Empty(t, w.quotes.quotations, "no debe aparecer ninguna cotización")
}

// La sincronización es best-effort: si la transacción de la cotización falla,
// la mutación del ítem queda en pie y la cotización conserva sus valores.
func TestServiceItemCreate_FalloDeSincronizacionNoRevierteElItem(t *testing.T) {
	w := newWorld()
	w.seedCustomer("c1")
	w.seedProject("p1", "c1")
	w.seedItem("i1", "p1", "2", "100")
	w.seedQuotation("q1", "p1", "c1", entity.QuotationItem{ServiceItemID: "i1", Name: "Diseño", Quantity: d("2"), Price: d("100")})
	w.quotes.quotations["q1"].Subtotal = d("200")
	w.quotes.quotations["q1"].Tax = d("20")
	w.quotes.quotations["q1"].Total = d("220")

	failTx := &failQuotationTx{err: errors.New("conexión perdida")}
	uc := usecase.NewServiceItemUseCase(w.items, w.projects, failTx, testLogger())

	created, err := uc.Create(context.Background(), dto.CreateServiceItemRequest{
		ProjectID: "p1", Name: "Hosting", Quantity: d("1"), Price: d("50"),
	})
	require.NoError(t, err, "el alta del ítem no debe fallar aunque falle la sincronización")

	item, _ := w.items.GetByID(created.ID)
	require.NotNil(t, item, "el ítem debe quedar persistido")

	// La cotización queda como estaba: mismos totales y misma única línea.
	q, _ := w.quotes.GetByID("q1")
	require.NotNil(t, q)
	assert.True(t, d("200").Equal(q.Subtotal), "subtotal intacto: esperaba 200, obtuve %s", q.Subtotal)
	assert.True(t, d("220").Equal(q.Total), "total intacto: esperaba 220, obtuve %s", q.Total)
	lines, _ := w.quotes.GetItems("q1")
	assert.Len(t, lines, 1)
}

func TestServiceItemDelete_FalloDeSincronizacionNoRevierteElBorrado(t *testing.T) {
	w := newWorld()
	w.seedCustomer("c1")
	w.seedProject("p1", "c1")
	w.seedItem("i1", "p1", "2", "100")
	w.seedQuotation("q1", "p1", "c1", entity.QuotationItem{ServiceItemID: "i1", Name: "Diseño", Quantity: d("2"), Price: d("100")})
	w.quotes.quotations["q1"].Subtotal = d("200")
	w.quotes.quotations["q1"].Tax = d("20")
	w.quotes.quotations["q1"].Total = d("220")

	failTx := &failQuotationTx{err: errors.New("conexión perdida")}
	uc := usecase.NewServiceItemUseCase(w.items, w.projects, failTx, testLogger())

	require.NoError(t, uc.Delete(context.Background(), "i1"))

	item, _ := w.items.GetByID("i1")
	assert.Nil(t, item, "el ítem debe quedar borrado")

	q, _ := w.quotes.GetByID("q1")
	require.NotNil(t, q)
	assert.True(t, d("200").Equal(q.Subtotal), "la cotización conserva sus totales anteriores")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestServiceItemCreate_ProyectoInexistente(t *testing.T) {
	w := newWorld()

	uc := newServiceItemUC(w)
	_, err := uc.Create(context.Background(), dto.CreateServiceItemRequest{
		ProjectID: "no-existe", Name: "Diseño", Quantity: d("1"), Price: d("100"),
	})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServiceItemCreate_MontosNegativos(t *testing.T) {
	w := newWorld()
	w.seedCustomer("c1")
	w.seedProject("p1", "c1")

	uc := newServiceItemUC(w)
	_, err := uc.Create(context.Background(), dto.CreateServiceItemRequest{
		ProjectID: "p1", Name: "Diseño", Quantity: d("1"), Price: d("-5"),
	})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
