package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/quotation-pro/internal/domain"
	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación de QuotationRepository (usable con pool o tx).
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

const quotationColumns = `id, project_id, customer_id, date, valid_until, status, currency,
	COALESCE(notes, ''), COALESCE(terms, ''), subtotal, tax, total, created_at, updated_at`

func scanQuotation(row pgx.Row) (*entity.Quotation, error) {
	var q entity.Quotation
	err := row.Scan(&q.ID, &q.ProjectID, &q.CustomerID, &q.Date, &q.ValidUntil,
		&q.Status, &q.Currency, &q.Notes, &q.Terms,
		&q.Subtotal, &q.Tax, &q.Total, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Create persiste la cabecera de la cotización. project_id tiene constraint
// único: un segundo insert para el mismo proyecto retorna ErrConflict.
func (r *QuotationRepo) Create(q *entity.Quotation) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	query := `
		INSERT INTO quotations (id, project_id, customer_id, date, valid_until, status, currency, notes, terms, subtotal, tax, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		q.ID, q.ProjectID, q.CustomerID, q.Date, q.ValidUntil, q.Status, q.Currency,
		nullIfEmpty(q.Notes), nullIfEmpty(q.Terms), q.Subtotal, q.Tax, q.Total,
		q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

// CreateItem persiste una línea (snapshot de un ítem de servicio).
func (r *QuotationRepo) CreateItem(item *entity.QuotationItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO quotation_items (id, quotation_id, service_item_id, name, description, quantity, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.QuotationID, item.ServiceItemID, item.Name, item.Description,
		item.Quantity, item.Price,
	)
	if err != nil {
		return fmt.Errorf("insert quotation item: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID (sin líneas; ver GetItems).
func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE id = $1`
	q, err := scanQuotation(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return q, nil
}

// GetByProject devuelve la cotización del proyecto o nil si no tiene.
func (r *QuotationRepo) GetByProject(projectID string) (*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE project_id = $1`
	q, err := scanQuotation(r.q.QueryRow(context.Background(), query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation by project: %w", err)
	}
	return q, nil
}

// List lista cotizaciones con paginación, las más recientes primero.
func (r *QuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryQuotations(query, limit, offset)
}

// ListByCustomer lista las cotizaciones de un cliente, las más recientes primero.
func (r *QuotationRepo) ListByCustomer(customerID string) ([]*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE customer_id = $1 ORDER BY created_at DESC`
	return r.queryQuotations(query, customerID)
}

func (r *QuotationRepo) queryQuotations(query string, args ...any) ([]*entity.Quotation, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

// GetItems obtiene las líneas de una cotización.
func (r *QuotationRepo) GetItems(quotationID string) ([]entity.QuotationItem, error) {
	query := `
		SELECT id, quotation_id, service_item_id, name, description, quantity, price
		FROM quotation_items WHERE quotation_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list quotation items: %w", err)
	}
	defer rows.Close()
	var list []entity.QuotationItem
	for rows.Next() {
		var it entity.QuotationItem
		if err := rows.Scan(&it.ID, &it.QuotationID, &it.ServiceItemID, &it.Name, &it.Description, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan quotation item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Update persiste cabecera y totales de la cotización (el estado tiene su propia ruta).
func (r *QuotationRepo) Update(q *entity.Quotation) error {
	query := `
		UPDATE quotations
		SET date = $2, valid_until = $3, notes = $4, terms = $5,
		    subtotal = $6, tax = $7, total = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		q.ID, q.Date, q.ValidUntil, nullIfEmpty(q.Notes), nullIfEmpty(q.Terms),
		q.Subtotal, q.Tax, q.Total, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quotation: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado de la cotización.
func (r *QuotationRepo) UpdateStatus(id, status string) error {
	query := `UPDATE quotations SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update quotation status: %w", err)
	}
	return nil
}

// Delete elimina una cotización por ID. ErrNotFound si no existía.
func (r *QuotationRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM quotations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItems elimina todas las líneas de una cotización (antes de reemplazarlas o borrarla).
func (r *QuotationRepo) DeleteItems(quotationID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM quotation_items WHERE quotation_id = $1`, quotationID)
	if err != nil {
		return fmt.Errorf("delete quotation items: %w", err)
	}
	return nil
}

// DeleteByProjects elimina las cotizaciones de un conjunto de proyectos (paso del cascade).
func (r *QuotationRepo) DeleteByProjects(projectIDs []string) error {
	if len(projectIDs) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM quotations WHERE project_id = ANY($1)`, projectIDs)
	if err != nil {
		return fmt.Errorf("delete quotations by projects: %w", err)
	}
	return nil
}

// DeleteItemsByProjects elimina las líneas de las cotizaciones de un conjunto
// de proyectos. Va antes de DeleteByProjects en el cascade.
func (r *QuotationRepo) DeleteItemsByProjects(projectIDs []string) error {
	if len(projectIDs) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(), `
		DELETE FROM quotation_items
		WHERE quotation_id IN (SELECT id FROM quotations WHERE project_id = ANY($1))`, projectIDs)
	if err != nil {
		return fmt.Errorf("delete quotation items by projects: %w", err)
	}
	return nil
}
