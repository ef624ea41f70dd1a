package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/quotation-pro/internal/domain"
	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
)

var _ repository.ServiceItemRepository = (*ServiceItemRepo)(nil)

// ServiceItemRepo implementación de ServiceItemRepository (usable con pool o tx).
type ServiceItemRepo struct {
	q Querier
}

// NewServiceItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceItemRepository(q Querier) *ServiceItemRepo {
	return &ServiceItemRepo{q: q}
}

// Create persiste un nuevo ítem de servicio.
func (r *ServiceItemRepo) Create(item *entity.ServiceItem) error {
	query := `
		INSERT INTO service_items (id, project_id, name, description, quantity, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProjectID, item.Name, item.Description,
		item.Quantity, item.Price, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ServiceItemRepo) GetByID(id string) (*entity.ServiceItem, error) {
	query := `
		SELECT id, project_id, name, description, quantity, price, created_at, updated_at
		FROM service_items WHERE id = $1`
	var it entity.ServiceItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.ProjectID, &it.Name, &it.Description, &it.Quantity, &it.Price, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service item: %w", err)
	}
	return &it, nil
}

// ListByProject lista los ítems de un proyecto, los más recientes primero.
func (r *ServiceItemRepo) ListByProject(projectID string) ([]*entity.ServiceItem, error) {
	query := `
		SELECT id, project_id, name, description, quantity, price, created_at, updated_at
		FROM service_items WHERE project_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list service items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceItem
	for rows.Next() {
		var it entity.ServiceItem
		if err := rows.Scan(&it.ID, &it.ProjectID, &it.Name, &it.Description, &it.Quantity, &it.Price, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza un ítem de servicio.
func (r *ServiceItemRepo) Update(item *entity.ServiceItem) error {
	query := `
		UPDATE service_items SET name = $2, description = $3, quantity = $4, price = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Quantity, item.Price, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service item: %w", err)
	}
	return nil
}

// Delete elimina un ítem por ID. ErrNotFound si no existía.
func (r *ServiceItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM service_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByProjects elimina los ítems de un conjunto de proyectos (paso del cascade).
func (r *ServiceItemRepo) DeleteByProjects(projectIDs []string) error {
	if len(projectIDs) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM service_items WHERE project_id = ANY($1)`, projectIDs)
	if err != nil {
		return fmt.Errorf("delete service items by projects: %w", err)
	}
	return nil
}
