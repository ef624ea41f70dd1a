package repository

import "github.com/tu-usuario/quotation-pro/internal/domain/entity"

// ServiceItemRepository define el puerto de persistencia para ServiceItem.
type ServiceItemRepository interface {
	Create(item *entity.ServiceItem) error
	GetByID(id string) (*entity.ServiceItem, error)
	ListByProject(projectID string) ([]*entity.ServiceItem, error)
	Update(item *entity.ServiceItem) error
	Delete(id string) error
	DeleteByProjects(projectIDs []string) error
}
