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

// ProjectUseCase casos de uso de proyectos. El borrado es en cascada sobre
// los ítems de servicio y la cotización del proyecto.
type ProjectUseCase struct {
	projects  repository.ProjectRepository
	customers repository.CustomerRepository
	tx        CascadeTxRunner
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(projects repository.ProjectRepository, customers repository.CustomerRepository, tx CascadeTxRunner) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, customers: customers, tx: tx}
}

// Create registra un proyecto para un cliente existente.
func (uc *ProjectUseCase) Create(req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	customer, err := uc.customers.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: el cliente no existe", domain.ErrInvalidInput)
	}

	status := req.Status
	if status == "" {
		status = entity.ProjectStatusPending
	}
	if !entity.ValidProjectStatus(status) {
		return nil, fmt.Errorf("%w: estado de proyecto inválido: %s", domain.ErrInvalidInput, status)
	}
	if !entity.ValidCurrency(req.Currency) {
		return nil, fmt.Errorf("%w: moneda inválida: %s", domain.ErrInvalidInput, req.Currency)
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &entity.Project{
		ID:          uuid.New().String(),
		CustomerID:  req.CustomerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		StartDate:   startDate,
		Status:      status,
		Currency:    req.Currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.projects.Create(p); err != nil {
		return nil, err
	}
	resp := toProjectResponse(p)
	return &resp, nil
}

// GetByID obtiene un proyecto por ID.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	p, err := uc.projects.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProjectResponse(p)
	return &resp, nil
}

// List lista proyectos con paginación.
func (uc *ProjectUseCase) List(page dto.PageRequest) ([]dto.ProjectResponse, error) {
	page.Normalize()
	projects, err := uc.projects.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProjectResponses(projects), nil
}

// ListByCustomer lista los proyectos de un cliente.
func (uc *ProjectUseCase) ListByCustomer(customerID string) ([]dto.ProjectResponse, error) {
	projects, err := uc.projects.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toProjectResponses(projects), nil
}

// Update actualiza un proyecto.
func (uc *ProjectUseCase) Update(id string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := uc.projects.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if !entity.ValidProjectStatus(req.Status) {
		return nil, fmt.Errorf("%w: estado de proyecto inválido: %s", domain.ErrInvalidInput, req.Status)
	}
	if !entity.ValidCurrency(req.Currency) {
		return nil, fmt.Errorf("%w: moneda inválida: %s", domain.ErrInvalidInput, req.Currency)
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	p.Name = strings.TrimSpace(req.Name)
	p.Description = req.Description
	p.StartDate = startDate
	p.Status = req.Status
	p.Currency = req.Currency
	p.UpdatedAt = time.Now()
	if err := uc.projects.Update(p); err != nil {
		return nil, err
	}
	resp := toProjectResponse(p)
	return &resp, nil
}

// Delete elimina el proyecto y todo lo que cuelga de él en una transacción:
// líneas de cotización, cotización, ítems de servicio y por último el
// proyecto. Si el proyecto no existía la transacción se revierte con ErrNotFound.
func (uc *ProjectUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.RunCascade(ctx, func(
		_ repository.CustomerRepository,
		projectRepo repository.ProjectRepository,
		itemRepo repository.ServiceItemRepository,
		quotationRepo repository.QuotationRepository,
	) error {
		ids := []string{id}
		if err := quotationRepo.DeleteItemsByProjects(ids); err != nil {
			return err
		}
		if err := quotationRepo.DeleteByProjects(ids); err != nil {
			return err
		}
		if err := itemRepo.DeleteByProjects(ids); err != nil {
			return err
		}
		return projectRepo.Delete(id)
	})
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: la fecha es obligatoria", domain.ErrInvalidInput)
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q (se espera YYYY-MM-DD)", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func toProjectResponse(p *entity.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          p.ID,
		CustomerID:  p.CustomerID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		Status:      p.Status,
		Currency:    p.Currency,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProjectResponses(projects []*entity.Project) []dto.ProjectResponse {
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out
}
