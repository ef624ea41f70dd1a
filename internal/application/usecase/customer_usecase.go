package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/quotation-pro/internal/application/dto"
	"github.com/tu-usuario/quotation-pro/internal/domain"
	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes. El borrado es en cascada: se
// eliminan proyectos, ítems de servicio y cotizaciones del cliente en una
// sola transacción.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	tx        CascadeTxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, tx CascadeTxRunner) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, tx: tx}
}

// Create registra un nuevo cliente.
func (uc *CustomerUseCase) Create(req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     req.Phone,
		Address:   req.Address,
		Company:   req.Company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customers.Create(c); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	c, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(page dto.PageRequest) ([]dto.CustomerResponse, error) {
	page.Normalize()
	customers, err := uc.customers.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update actualiza los datos de un cliente.
func (uc *CustomerUseCase) Update(id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	c, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = strings.TrimSpace(req.Name)
	c.Email = strings.TrimSpace(req.Email)
	c.Phone = req.Phone
	c.Address = req.Address
	c.Company = req.Company
	c.UpdatedAt = time.Now()
	if err := uc.customers.Update(c); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// Delete elimina el cliente y todo lo que cuelga de él en una transacción:
// líneas de cotización, cotizaciones, ítems de servicio, proyectos y por
// último el cliente. Si el cliente no existía la transacción se revierte
// con ErrNotFound.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.RunCascade(ctx, func(
		customerRepo repository.CustomerRepository,
		projectRepo repository.ProjectRepository,
		itemRepo repository.ServiceItemRepository,
		quotationRepo repository.QuotationRepository,
	) error {
		projects, err := projectRepo.ListByCustomer(id)
		if err != nil {
			return err
		}
		projectIDs := make([]string, 0, len(projects))
		for _, p := range projects {
			projectIDs = append(projectIDs, p.ID)
		}
		if err := quotationRepo.DeleteItemsByProjects(projectIDs); err != nil {
			return err
		}
		if err := quotationRepo.DeleteByProjects(projectIDs); err != nil {
			return err
		}
		if err := itemRepo.DeleteByProjects(projectIDs); err != nil {
			return err
		}
		if err := projectRepo.DeleteByCustomer(id); err != nil {
			return err
		}
		return customerRepo.Delete(id)
	})
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
