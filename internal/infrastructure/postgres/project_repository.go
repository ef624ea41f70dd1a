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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación de ProjectRepository (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `id, customer_id, name, description, start_date, status, currency, created_at, updated_at`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(&p.ID, &p.CustomerID, &p.Name, &p.Description, &p.StartDate,
		&p.Status, &p.Currency, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (id, customer_id, name, description, start_date, status, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.CustomerID, project.Name, project.Description,
		project.StartDate, project.Status, project.Currency, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// List lista proyectos con paginación, los más recientes primero.
func (r *ProjectRepo) List(limit, offset int) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryProjects(query, limit, offset)
}

// ListByCustomer lista los proyectos de un cliente, los más recientes primero.
func (r *ProjectRepo) ListByCustomer(customerID string) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE customer_id = $1 ORDER BY created_at DESC`
	return r.queryProjects(query, customerID)
}

func (r *ProjectRepo) queryProjects(query string, args ...any) ([]*entity.Project, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un proyecto.
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects SET name = $2, description = $3, start_date = $4, status = $5, currency = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, project.Description, project.StartDate,
		project.Status, project.Currency, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado del proyecto (efecto de aceptar una cotización).
func (r *ProjectRepo) UpdateStatus(id, status string) error {
	query := `UPDATE projects SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update project status: %w", err)
	}
	return nil
}

// Delete elimina un proyecto por ID. ErrNotFound si no se eliminó ninguna fila.
func (r *ProjectRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByCustomer elimina todos los proyectos de un cliente (paso del cascade).
func (r *ProjectRepo) DeleteByCustomer(customerID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM projects WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete projects by customer: %w", err)
	}
	return nil
}
