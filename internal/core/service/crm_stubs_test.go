package service

import (
	"context"
	"strconv"

	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
)

// recorderStub collects activity inputs synchronously for assertions.
type recorderStub struct {
	recorded []ports.ActivityInput
}

func (r *recorderStub) Record(input ports.ActivityInput) {
	r.recorded = append(r.recorded, input)
}

type stubCustomerRepo struct {
	customers map[string]*domain.Customer
	nextID    int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (r *stubCustomerRepo) ListByOwner(_ context.Context, owner string) ([]domain.Customer, error) {
	out := []domain.Customer{}
	for _, c := range r.customers {
		if c.Owner == owner {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, owner, id string) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.Owner != owner {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) Insert(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	r.nextID++
	clone := *c
	if clone.ID == "" {
		clone.ID = "cust-" + strconv.Itoa(r.nextID)
	}
	r.customers[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	existing, ok := r.customers[c.ID]
	if !ok || existing.Owner != c.Owner {
		return domain.ErrNotFound
	}
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, owner, id string) error {
	c, ok := r.customers[id]
	if !ok || c.Owner != owner {
		return domain.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *stubCustomerRepo) LastByOwner(_ context.Context, owner string, limit int64) ([]domain.Customer, error) {
	out, _ := r.ListByOwner(context.Background(), owner)
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubOpportunityRepo struct {
	opps map[string]*domain.Opportunity
}

func newStubOpportunityRepo() *stubOpportunityRepo {
	return &stubOpportunityRepo{opps: make(map[string]*domain.Opportunity)}
}

func (r *stubOpportunityRepo) ListByOwner(_ context.Context, owner string) ([]domain.Opportunity, error) {
	out := []domain.Opportunity{}
	for _, o := range r.opps {
		if o.Owner == owner {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOpportunityRepo) ListByOwnerAndStage(_ context.Context, owner string, stage domain.Stage) ([]domain.Opportunity, error) {
	out := []domain.Opportunity{}
	for _, o := range r.opps {
		if o.Owner == owner && o.Stage == stage {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOpportunityRepo) FindByID(_ context.Context, owner, id string) (*domain.Opportunity, error) {
	o, ok := r.opps[id]
	if !ok || o.Owner != owner {
		return nil, domain.ErrNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOpportunityRepo) Insert(_ context.Context, o *domain.Opportunity) (*domain.Opportunity, error) {
	clone := *o
	r.opps[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubOpportunityRepo) Update(_ context.Context, o *domain.Opportunity) error {
	existing, ok := r.opps[o.ID]
	if !ok || existing.Owner != o.Owner {
		return domain.ErrNotFound
	}
	clone := *o
	r.opps[o.ID] = &clone
	return nil
}

func (r *stubOpportunityRepo) Delete(_ context.Context, owner, id string) error {
	o, ok := r.opps[id]
	if !ok || o.Owner != owner {
		return domain.ErrNotFound
	}
	delete(r.opps, id)
	return nil
}

type stubTaskRepo struct {
	tasks map[string]*domain.Task
	next  int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (r *stubTaskRepo) ListByOwner(_ context.Context, owner string) ([]domain.Task, error) {
	out := []domain.Task{}
	for _, t := range r.tasks {
		if t.Owner == owner {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, owner, id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.Owner != owner {
		return nil, domain.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) Insert(_ context.Context, t *domain.Task) (*domain.Task, error) {
	r.next++
	clone := *t
	if clone.ID == "" {
		clone.ID = "task-" + strconv.Itoa(r.next)
	}
	r.tasks[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, t *domain.Task) error {
	existing, ok := r.tasks[t.ID]
	if !ok || existing.Owner != t.Owner {
		return domain.ErrNotFound
	}
	clone := *t
	r.tasks[t.ID] = &clone
	return nil
}

func (r *stubTaskRepo) Delete(_ context.Context, owner, id string) error {
	t, ok := r.tasks[id]
	if !ok || t.Owner != owner {
		return domain.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

// stubCache is an always-miss cache unless primed, counting writes.
type stubCache struct {
	entries map[string]*ports.DashboardSummary
	sets    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*ports.DashboardSummary)}
}

func (c *stubCache) Get(_ context.Context, owner string) (*ports.DashboardSummary, bool) {
	s, ok := c.entries[owner]
	return s, ok
}

func (c *stubCache) Set(_ context.Context, owner string, summary *ports.DashboardSummary) {
	c.entries[owner] = summary
	c.sets++
}
