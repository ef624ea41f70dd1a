package repository

import "github.com/tu-usuario/quotation-pro/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	List(limit, offset int) ([]*entity.Project, error)
	ListByCustomer(customerID string) ([]*entity.Project, error)
	Update(project *entity.Project) error
	UpdateStatus(id, status string) error
	// Delete elimina la fila del proyecto. Retorna domain.ErrNotFound si no
	// se eliminó ninguna fila.
	Delete(id string) error
	DeleteByCustomer(customerID string) error
}
