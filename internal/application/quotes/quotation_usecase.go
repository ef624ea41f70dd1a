package quotes

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/quotation-pro/internal/application/dto"
	"github.com/tu-usuario/quotation-pro/internal/domain"
	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
	"github.com/tu-usuario/quotation-pro/internal/domain/quote"
	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
	"github.com/tu-usuario/quotation-pro/pkg/logger"
)

// QuotationUseCase casos de uso de cotizaciones. Las líneas siempre se copian
// en el servidor desde los ítems de servicio del proyecto y los totales se
// derivan de esas copias; nada de eso viene del request.
type QuotationUseCase struct {
	quotations repository.QuotationRepository
	projects   repository.ProjectRepository
	items      repository.ServiceItemRepository
	tx         QuotationTxRunner
	log        *logger.Logger
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(
	quotations repository.QuotationRepository,
	projects repository.ProjectRepository,
	items repository.ServiceItemRepository,
	tx QuotationTxRunner,
	log *logger.Logger,
) *QuotationUseCase {
	return &QuotationUseCase{
		quotations: quotations,
		projects:   projects,
		items:      items,
		tx:         tx,
		log:        log,
	}
}

// Create crea la cotización de un proyecto en estado draft. El cliente y la
// moneda se heredan del proyecto. Un proyecto admite a lo sumo una
// cotización: un segundo intento retorna ErrConflict.
func (uc *QuotationUseCase) Create(ctx context.Context, req dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	project, err := uc.projects.GetByID(req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: el proyecto no existe", domain.ErrInvalidInput)
	}
	existing, err := uc.quotations.GetByProject(project.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el proyecto ya tiene una cotización", domain.ErrConflict)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	validUntil, err := parseDate(req.ValidUntil)
	if err != nil {
		return nil, err
	}

	serviceItems, err := uc.selectItems(project.ID, req.ServiceItemIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	q := &entity.Quotation{
		ID:         uuid.New().String(),
		ProjectID:  project.ID,
		CustomerID: project.CustomerID,
		Date:       date,
		ValidUntil: validUntil,
		Status:     entity.QuotationStatusDraft,
		Currency:   project.Currency,
		Notes:      req.Notes,
		Terms:      req.Terms,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	lines := quote.SnapshotItems(q.ID, serviceItems)
	totals := quote.CalculateTotals(lines)
	q.Subtotal = totals.Subtotal
	q.Tax = totals.Tax
	q.Total = totals.Total

	err = uc.tx.RunQuotation(ctx, func(quotationRepo repository.QuotationRepository) error {
		if err := quotationRepo.Create(q); err != nil {
			return err
		}
		for i := range lines {
			if err := quotationRepo.CreateItem(&lines[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toQuotationResponse(q, lines)
	return &resp, nil
}

// selectItems devuelve los ítems del proyecto a copiar: todos si ids viene
// vacío, o el subconjunto pedido. Un ID ajeno al proyecto es entrada inválida.
func (uc *QuotationUseCase) selectItems(projectID string, ids []string) ([]*entity.ServiceItem, error) {
	all, err := uc.items.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return all, nil
	}
	byID := make(map[string]*entity.ServiceItem, len(all))
	for _, it := range all {
		byID[it.ID] = it
	}
	selected := make([]*entity.ServiceItem, 0, len(ids))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: el ítem %s no pertenece al proyecto", domain.ErrInvalidInput, id)
		}
		selected = append(selected, it)
	}
	return selected, nil
}

// GetByID obtiene una cotización con sus líneas.
func (uc *QuotationUseCase) GetByID(id string) (*dto.QuotationResponse, error) {
	q, err := uc.quotations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.quotations.GetItems(q.ID)
	if err != nil {
		return nil, err
	}
	resp := toQuotationResponse(q, items)
	return &resp, nil
}

// GetByProject obtiene la cotización de un proyecto con sus líneas.
func (uc *QuotationUseCase) GetByProject(projectID string) (*dto.QuotationResponse, error) {
	q, err := uc.quotations.GetByProject(projectID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.quotations.GetItems(q.ID)
	if err != nil {
		return nil, err
	}
	resp := toQuotationResponse(q, items)
	return &resp, nil
}

// List lista cabeceras de cotizaciones con paginación (sin líneas).
func (uc *QuotationUseCase) List(page dto.PageRequest) ([]dto.QuotationResponse, error) {
	page.Normalize()
	quotations, err := uc.quotations.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		out = append(out, toQuotationResponse(q, nil))
	}
	return out, nil
}

// ListByCustomer lista las cotizaciones de un cliente (sin líneas).
func (uc *QuotationUseCase) ListByCustomer(customerID string) ([]dto.QuotationResponse, error) {
	quotations, err := uc.quotations.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		out = append(out, toQuotationResponse(q, nil))
	}
	return out, nil
}

// Update actualiza la cabecera de la cotización. Con RefreshItems las líneas
// se reconstruyen desde los ítems de servicio actuales del proyecto y los
// totales se recalculan; sin él, líneas y totales quedan como estaban.
func (uc *QuotationUseCase) Update(ctx context.Context, id string, req dto.UpdateQuotationRequest) (*dto.QuotationResponse, error) {
	q, err := uc.quotations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	validUntil, err := parseDate(req.ValidUntil)
	if err != nil {
		return nil, err
	}
	q.Date = date
	q.ValidUntil = validUntil
	q.Notes = req.Notes
	q.Terms = req.Terms
	q.UpdatedAt = time.Now()

	var lines []entity.QuotationItem
	if req.RefreshItems {
		serviceItems, err := uc.items.ListByProject(q.ProjectID)
		if err != nil {
			return nil, err
		}
		lines = quote.SnapshotItems(q.ID, serviceItems)
		totals := quote.CalculateTotals(lines)
		q.Subtotal = totals.Subtotal
		q.Tax = totals.Tax
		q.Total = totals.Total

		err = uc.tx.RunQuotation(ctx, func(quotationRepo repository.QuotationRepository) error {
			if err := quotationRepo.DeleteItems(q.ID); err != nil {
				return err
			}
			for i := range lines {
				if err := quotationRepo.CreateItem(&lines[i]); err != nil {
					return err
				}
			}
			return quotationRepo.Update(q)
		})
		if err != nil {
			return nil, err
		}
	} else {
		if err := uc.quotations.Update(q); err != nil {
			return nil, err
		}
		lines, err = uc.quotations.GetItems(q.ID)
		if err != nil {
			return nil, err
		}
	}
	resp := toQuotationResponse(q, lines)
	return &resp, nil
}

// UpdateStatus aplica una transición del flujo de estados:
//
//	draft → sent → {accepted, rejected} → sent
//
// Una transición fuera del flujo retorna ErrConflict. Al aceptar, el
// proyecto pasa a in-progress; ese efecto es best-effort (se registra si
// falla) y nunca se deshace al salir de accepted.
func (uc *QuotationUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.QuotationResponse, error) {
	if !entity.ValidQuotationStatus(status) {
		return nil, fmt.Errorf("%w: estado de cotización inválido: %s", domain.ErrInvalidInput, status)
	}
	q, err := uc.quotations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if !quote.CanTransition(q.Status, status) {
		return nil, fmt.Errorf("%w: transición no permitida: %s → %s", domain.ErrConflict, q.Status, status)
	}
	if err := uc.quotations.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	q.Status = status
	q.UpdatedAt = time.Now()

	if status == entity.QuotationStatusAccepted {
		if err := uc.projects.UpdateStatus(q.ProjectID, entity.ProjectStatusInProgress); err != nil {
			uc.log.Warn().Err(err).Str("project_id", q.ProjectID).
				Msg("no se pudo pasar el proyecto a in-progress tras aceptar la cotización")
		}
	}

	items, err := uc.quotations.GetItems(q.ID)
	if err != nil {
		return nil, err
	}
	resp := toQuotationResponse(q, items)
	return &resp, nil
}

// Delete elimina la cotización y sus líneas en una transacción.
func (uc *QuotationUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.RunQuotation(ctx, func(quotationRepo repository.QuotationRepository) error {
		if err := quotationRepo.DeleteItems(id); err != nil {
			return err
		}
		return quotationRepo.Delete(id)
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

func toQuotationResponse(q *entity.Quotation, items []entity.QuotationItem) dto.QuotationResponse {
	lines := make([]dto.QuotationItemResponse, 0, len(items))
	for _, it := range items {
		lines = append(lines, dto.QuotationItemResponse{
			ID:            it.ID,
			ServiceItemID: it.ServiceItemID,
			Name:          it.Name,
			Description:   it.Description,
			Quantity:      it.Quantity,
			Price:         it.Price,
			LineTotal:     it.Price.Mul(it.Quantity),
		})
	}
	return dto.QuotationResponse{
		ID:         q.ID,
		ProjectID:  q.ProjectID,
		CustomerID: q.CustomerID,
		Date:       q.Date,
		ValidUntil: q.ValidUntil,
		Status:     q.Status,
		Currency:   q.Currency,
		Notes:      q.Notes,
		Terms:      q.Terms,
		Items:      lines,
		Subtotal:   q.Subtotal,
		Tax:        q.Tax,
		Total:      q.Total,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}
