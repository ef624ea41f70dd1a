package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/quotation-pro/internal/application/usecase"
	"github.com/tu-usuario/quotation-pro/internal/domain"
	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
	"github.com/tu-usuario/quotation-pro/pkg/logger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// world agrupa los repos en memoria y el runner compartido de los tests.
type world struct {
	customers *memCustomerRepo
	projects  *memProjectRepo
	items     *memItemRepo
	quotes    *memQuotationRepo
	tx        *memTxRunner
}

func newWorld() *world {
	w := &world{
		customers: newMemCustomerRepo(),
		projects:  newMemProjectRepo(),
		items:     newMemItemRepo(),
		quotes:    newMemQuotationRepo(),
	}
	w.tx = &memTxRunner{customers: w.customers, projects: w.projects, items: w.items, quotes: w.quotes}
	return w
}

func (w *world) seedCustomer(id string) {
	_ = w.customers.Create(&entity.Customer{ID: id, Name: "Cliente " + id, CreatedAt: time.Now()})
}

func (w *world) seedProject(id, customerID string) {
	_ = w.projects.Create(&entity.Project{
		ID: id, CustomerID: customerID, Name: "Proyecto " + id,
		Status: entity.ProjectStatusPending, Currency: entity.CurrencyUSD,
	})
}

func (w *world) seedItem(id, projectID, qty, price string) {
	_ = w.items.Create(&entity.ServiceItem{
		ID: id, ProjectID: projectID, Name: "Ítem " + id,
		Quantity: d(qty), Price: d(price),
	})
}

func (w *world) seedQuotation(id, projectID, customerID string, lines ...entity.QuotationItem) {
	_ = w.quotes.Create(&entity.Quotation{
		ID: id, ProjectID: projectID, CustomerID: customerID,
		Status: entity.QuotationStatusDraft, Currency: entity.CurrencyUSD,
	})
	for i := range lines {
		lines[i].QuotationID = id
		_ = w.quotes.CreateItem(&lines[i])
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado en cascada de cliente
// ──────────────────────────────────────────────────────────────────────────────

// Borrar un cliente elimina sus proyectos, ítems, cotizaciones y líneas;
// los datos de otros clientes quedan intactos.
func TestCustomerDelete_CascadaCompleta(t *testing.T) {
	w := newWorld()
	w.seedCustomer("c1")
	w.seedProject("p1", "c1")
	w.seedProject("p2", "c1")
	w.seedItem("i1", "p1", "2", "100")
	w.seedItem("i2", "p2", "1", "50")
	w.seedQuotation("q1", "p1", "c1", entity.QuotationItem{ServiceItemID: "i1", Quantity: d("2"), Price: d("100")})
	w.seedQuotation("q2", "p2", "c1", entity.QuotationItem{ServiceItemID: "i2", Quantity: d("1"), Price: d("50")})

	// Otro cliente con su propio árbol, que debe sobrevivir.
	w.seedCustomer("c2")
	w.seedProject("p3", "c2")
	w.seedItem("i3", "p3", "1", "10")
	w.seedQuotation("q3", "p3", "c2", entity.QuotationItem{ServiceItemID: "i3", Quantity: d("1"), Price: d("10")})

	uc := usecase.NewCustomerUseCase(w.customers, w.tx)
	require.NoError(t, uc.Delete(context.Background(), "c1"))

	assert.Empty(t, w.customers.data["c1"], "el cliente debe desaparecer")
	assert.Len(t, w.projects.data, 1, "solo debe quedar el proyecto del otro cliente")
	assert.Len(t, w.items.data, 1, "solo debe quedar el ítem del otro cliente")
	assert.Len(t, w.quotes.quotations, 1, "solo debe quedar la cotización del otro cliente")
	assert.NotNil(t, w.quotes.quotations["q3"])
	assert.Len(t, w.quotes.items["q3"], 1, "las líneas del otro cliente no se tocan")
}

// Borrar un cliente inexistente retorna ErrNotFound y no toca nada.
func TestCustomerDelete_ClienteInexistente(t *testing.T) {
	w := newWorld()
	w.seedCustomer("c1")
	w.seedProject("p1", "c1")

	uc := usecase.NewCustomerUseCase(w.customers, w.tx)
	err := uc.Delete(context.Background(), "no-existe")

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, w.customers.data, 1)
	assert.Len(t, w.projects.data, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado en cascada de proyecto
// ──────────────────────────────────────────────────────────────────────────────

// Borrar un proyecto elimina sus ítems y su cotización con líneas; los demás
// proyectos del mismo cliente no se ven afectados.
func TestProjectDelete_CascadaSoloDelProyecto(t *testing.T) {
	w := newWorld()
	w.seedCustomer("c1")
	w.seedProject("p1", "c1")
	w.seedProject("p2", "c1")
	w.seedItem("i1", "p1", "2", "100")
	w.seedItem("i2", "p2", "1", "50")
	w.seedQuotation("q1", "p1", "c1", entity.QuotationItem{ServiceItemID: "i1", Quantity: d("2"), Price: d("100")})
	w.seedQuotation("q2", "p2", "c1", entity.QuotationItem{ServiceItemID: "i2", Quantity: d("1"), Price: d("50")})

	uc := usecase.NewProjectUseCase(w.projects, w.customers, w.tx)
	require.NoError(t, uc.Delete(context.Background(), "p1"))

	assert.Nil(t, w.projects.data["p1"])
	assert.NotNil(t, w.projects.data["p2"], "el otro proyecto debe sobrevivir")
	assert.Nil(t, w.items.data["i1"])
	assert.NotNil(t, w.items.data["i2"])
	assert.Nil(t, w.quotes.quotations["q1"])
	assert.Empty(t, w.quotes.items["q1"], "las líneas de la cotización borrada no deben quedar huérfanas")
	assert.NotNil(t, w.quotes.quotations["q2"])
	assert.NotNil(t, w.customers.data["c1"], "el cliente no se toca")
}

func TestProjectDelete_ProyectoInexistente(t *testing.T) {
	w := newWorld()
	w.seedCustomer("c1")

	uc := usecase.NewProjectUseCase(w.projects, w.customers, w.tx)
	err := uc.Delete(context.Background(), "no-existe")

	require.ErrorIs(t, err, domain.ErrNotFound)
}
