package repository

import "github.com/tu-usuario/quotation-pro/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	// Delete elimina la fila del cliente. Retorna domain.ErrNotFound si no
	// se eliminó ninguna fila (verificación del paso raíz del cascade).
	Delete(id string) error
}
