package usecase_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/tu-usuario/quotation-pro/internal/domain"
	"github.com/tu-usuario/quotation-pro/internal/domain/entity"
	"github.com/tu-usuario/quotation-pro/internal/domain/repository"
)

// Repositorios en memoria para los tests de casos de uso. Imitan el contrato
// de los adaptadores de PostgreSQL: GetByID devuelve nil si no existe y
// Delete retorna ErrNotFound cuando no borró ninguna fila.

// ── Customers ─────────────────────────────────────────────────────────────────

type memCustomerRepo struct {
	data map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{data: map[string]*entity.Customer{}}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.data[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.data {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.data[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) Delete(id string) error {
	if _, ok := r.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// ── Projects ──────────────────────────────────────────────────────────────────

type memProjectRepo struct {
	data map[string]*entity.Project
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{data: map[string]*entity.Project{}}
}

func (r *memProjectRepo) Create(p *entity.Project) error {
	cp := *p
	r.data[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) GetByID(id string) (*entity.Project, error) {
	p, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProjectRepo) List(limit, offset int) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.data {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProjectRepo) ListByCustomer(customerID string) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.data {
		if p.CustomerID == customerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProjectRepo) Update(p *entity.Project) error {
	cp := *p
	r.data[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) UpdateStatus(id, status string) error {
	p, ok := r.data[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

func (r *memProjectRepo) Delete(id string) error {
	if _, ok := r.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *memProjectRepo) DeleteByCustomer(customerID string) error {
	for id, p := range r.data {
		if p.CustomerID == customerID {
			delete(r.data, id)
		}
	}
	return nil
}

// ── Service items ─────────────────────────────────────────────────────────────

type memItemRepo struct {
	data map[string]*entity.ServiceItem
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{data: map[string]*entity.ServiceItem{}}
}

func (r *memItemRepo) Create(it *entity.ServiceItem) error {
	cp := *it
	r.data[it.ID] = &cp
	return nil
}

func (r *memItemRepo) GetByID(id string) (*entity.ServiceItem, error) {
	it, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItemRepo) ListByProject(projectID string) ([]*entity.ServiceItem, error) {
	var out []*entity.ServiceItem
	for _, it := range r.data {
		if it.ProjectID == projectID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memItemRepo) Update(it *entity.ServiceItem) error {
	cp := *it
	r.data[it.ID] = &cp
	return nil
}

func (r *memItemRepo) Delete(id string) error {
	if _, ok := r.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *memItemRepo) DeleteByProjects(projectIDs []string) error {
	set := map[string]bool{}
	for _, id := range projectIDs {
		set[id] = true
	}
	for id, it := range r.data {
		if set[it.ProjectID] {
			delete(r.data, id)
		}
	}
	return nil
}

// ── Quotations ────────────────────────────────────────────────────────────────

type memQuotationRepo struct {
	quotations map[string]*entity.Quotation
	items      map[string][]entity.QuotationItem
}

func newMemQuotationRepo() *memQuotationRepo {
	return &memQuotationRepo{
		quotations: map[string]*entity.Quotation{},
		items:      map[string][]entity.QuotationItem{},
	}
}

func (r *memQuotationRepo) Create(q *entity.Quotation) error {
	for _, existing := range r.quotations {
		if existing.ProjectID == q.ProjectID {
			return domain.ErrConflict
		}
	}
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	cp := *q
	r.quotations[q.ID] = &cp
	return nil
}

func (r *memQuotationRepo) CreateItem(item *entity.QuotationItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items[item.QuotationID] = append(r.items[item.QuotationID], *item)
	return nil
}

func (r *memQuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	q, ok := r.quotations[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *memQuotationRepo) GetByProject(projectID string) (*entity.Quotation, error) {
	for _, q := range r.quotations {
		if q.ProjectID == projectID {
			cp := *q
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memQuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	var out []*entity.Quotation
	for _, q := range r.quotations {
		cp := *q
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memQuotationRepo) ListByCustomer(customerID string) ([]*entity.Quotation, error) {
	var out []*entity.Quotation
	for _, q := range r.quotations {
		if q.CustomerID == customerID {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memQuotationRepo) GetItems(quotationID string) ([]entity.QuotationItem, error) {
	return append([]entity.QuotationItem(nil), r.items[quotationID]...), nil
}

func (r *memQuotationRepo) Update(q *entity.Quotation) error {
	if _, ok := r.quotations[q.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *q
	r.quotations[q.ID] = &cp
	return nil
}

func (r *memQuotationRepo) UpdateStatus(id, status string) error {
	q, ok := r.quotations[id]
	if !ok {
		return domain.ErrNotFound
	}
	q.Status = status
	return nil
}

func (r *memQuotationRepo) Delete(id string) error {
	if _, ok := r.quotations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.quotations, id)
	return nil
}

func (r *memQuotationRepo) DeleteItems(quotationID string) error {
	delete(r.items, quotationID)
	return nil
}

func (r *memQuotationRepo) DeleteByProjects(projectIDs []string) error {
	set := map[string]bool{}
	for _, id := range projectIDs {
		set[id] = true
	}
	for id, q := range r.quotations {
		if set[q.ProjectID] {
			delete(r.quotations, id)
		}
	}
	return nil
}

func (r *memQuotationRepo) DeleteItemsByProjects(projectIDs []string) error {
	set := map[string]bool{}
	for _, id := range projectIDs {
		set[id] = true
	}
	for qid, q := range r.quotations {
		if set[q.ProjectID] {
			delete(r.items, qid)
		}
	}
	return nil
}

// ── Runner ────────────────────────────────────────────────────────────────────

// memTxRunner entrega los repos en memoria al callback, sin transacción real.
type memTxRunner struct {
	customers *memCustomerRepo
	projects  *memProjectRepo
	items     *memItemRepo
	quotes    *memQuotationRepo
}

func (r *memTxRunner) RunCascade(_ context.Context, fn func(
	repository.CustomerRepository,
	repository.ProjectRepository,
	repository.ServiceItemRepository,
	repository.QuotationRepository,
) error) error {
	return fn(r.customers, r.projects, r.items, r.quotes)
}

func (r *memTxRunner) RunQuotation(_ context.Context, fn func(repository.QuotationRepository) error) error {
	return fn(r.quotes)
}

// failQuotationTx simula una transacción que siempre falla: el callback nunca
// llega a ejecutarse, como cuando Begin o Commit devuelven error.
type failQuotationTx struct {
	err error
}

func (r *failQuotationTx) RunQuotation(context.Context, func(repository.QuotationRepository) error) error {
	return r.err
}
