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
	"github.com/tu-usuario/quotation-pro/internal/domain/quote"
	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
	"github.com/tu-usuario/quotation-pro/pkg/logger"
)

// ServiceItemUseCase casos de uso de ítems de servicio. Tras cada mutación,
// si el proyecto ya tiene cotización, sus líneas y totales se sincronizan
// con el estado actual de los ítems. La sincronización es best-effort: si
// falla se registra en el log y la mutación del ítem queda en pie.
type ServiceItemUseCase struct {
	items    repository.ServiceItemRepository
	projects repository.ProjectRepository
	tx       QuotationTxRunner
	log      *logger.Logger
}

// NewServiceItemUseCase construye el caso de uso.
func NewServiceItemUseCase(
	items repository.ServiceItemRepository,
	projects repository.ProjectRepository,
	tx QuotationTxRunner,
	log *logger.Logger,
) *ServiceItemUseCase {
	return &ServiceItemUseCase{items: items, projects: projects, tx: tx, log: log}
}

// Create registra un ítem de servicio en un proyecto existente.
func (uc *ServiceItemUseCase) Create(ctx context.Context, req dto.CreateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if req.Quantity.IsNegative() || req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: cantidad y precio no pueden ser negativos", domain.ErrInvalidInput)
	}
	project, err := uc.projects.GetByID(req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: el proyecto no existe", domain.ErrInvalidInput)
	}

	now := time.Now()
	item := &entity.ServiceItem{
		ID:          uuid.New().String(),
		ProjectID:   req.ProjectID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.items.Create(item); err != nil {
		return nil, err
	}
	uc.syncQuotation(ctx, item.ProjectID)
	resp := toServiceItemResponse(item)
	return &resp, nil
}

// GetByID obtiene un ítem por ID.
func (uc *ServiceItemUseCase) GetByID(id string) (*dto.ServiceItemResponse, error) {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := toServiceItemResponse(item)
	return &resp, nil
}

// ListByProject lista los ítems de un proyecto.
func (uc *ServiceItemUseCase) ListByProject(projectID string) ([]dto.ServiceItemResponse, error) {
	items, err := uc.items.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toServiceItemResponse(it))
	}
	return out, nil
}

// Update actualiza un ítem de servicio y sincroniza la cotización del proyecto.
func (uc *ServiceItemUseCase) Update(ctx context.Context, id string, req dto.UpdateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if req.Quantity.IsNegative() || req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: cantidad y precio no pueden ser negativos", domain.ErrInvalidInput)
	}
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = strings.TrimSpace(req.Name)
	item.Description = req.Description
	item.Quantity = req.Quantity
	item.Price = req.Price
	item.UpdatedAt = time.Now()
	if err := uc.items.Update(item); err != nil {
		return nil, err
	}
	uc.syncQuotation(ctx, item.ProjectID)
	resp := toServiceItemResponse(item)
	return &resp, nil
}

// Delete elimina un ítem y sincroniza la cotización del proyecto. Si el ítem
// eliminado era el último, la cotización queda con cero líneas y totales en cero.
func (uc *ServiceItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if err := uc.items.Delete(id); err != nil {
		return err
	}
	uc.syncQuotation(ctx, item.ProjectID)
	return nil
}

// syncQuotation reconstruye las líneas de la cotización del proyecto desde
// los ítems de servicio actuales y recalcula subtotal, impuesto y total en
// una transacción. Si el proyecto no tiene cotización no hace nada.
func (uc *ServiceItemUseCase) syncQuotation(ctx context.Context, projectID string) {
	items, err := uc.items.ListByProject(projectID)
	if err != nil {
		uc.log.Warn().Err(err).Str("project_id", projectID).
			Msg("no se pudieron leer los ítems para sincronizar la cotización")
		return
	}
	err = uc.tx.RunQuotation(ctx, func(quotationRepo repository.QuotationRepository) error {
		q, err := quotationRepo.GetByProject(projectID)
		if err != nil {
			return err
		}
		if q == nil {
			return nil
		}
		lines := quote.SnapshotItems(q.ID, items)
		totals := quote.CalculateTotals(lines)

		if err := quotationRepo.DeleteItems(q.ID); err != nil {
			return err
		}
		for i := range lines {
			if err := quotationRepo.CreateItem(&lines[i]); err != nil {
				return err
			}
		}
		q.Subtotal = totals.Subtotal
		q.Tax = totals.Tax
		q.Total = totals.Total
		q.UpdatedAt = time.Now()
		return quotationRepo.Update(q)
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("project_id", projectID).
			Msg("no se pudo sincronizar la cotización del proyecto")
	}
}

func toServiceItemResponse(it *entity.ServiceItem) dto.ServiceItemResponse {
	return dto.ServiceItemResponse{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		Name:        it.Name,
		Description: it.Description,
		Quantity:    it.Quantity,
		Price:       it.Price,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
