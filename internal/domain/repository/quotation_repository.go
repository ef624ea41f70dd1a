package repository

import "github.com/tu-usuario/quotation-pro/internal/domain/entity"

// QuotationRepository define el puerto de persistencia para Quotation y sus líneas.
type QuotationRepository interface {
	Create(q *entity.Quotation) error
	CreateItem(item *entity.QuotationItem) error
	GetByID(id string) (*entity.Quotation, error)
	// GetByProject devuelve la cotización del proyecto o nil si no tiene.
	// project_id es único en la tabla: a lo sumo una fila.
	GetByProject(projectID string) (*entity.Quotation, error)
	List(limit, offset int) ([]*entity.Quotation, error)
	ListByCustomer(customerID string) ([]*entity.Quotation, error)
	GetItems(quotationID string) ([]entity.QuotationItem, error)
	// Update persiste cabecera y totales (no cambia el estado).
	Update(q *entity.Quotation) error
	UpdateStatus(id, status string) error
	Delete(id string) error
	DeleteItems(quotationID string) error
	DeleteByProjects(projectIDs []string) error
	DeleteItemsByProjects(projectIDs []string) error
}
