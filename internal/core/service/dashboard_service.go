package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
)

const recentCustomerLimit = 5

// DashboardService aggregates the landing-page figures for one user from
// the opportunity, task and customer repositories. Computed summaries are
// cached per user for a short TTL; the cache is best-effort and a backend
// failure falls through to a recomputation.
type DashboardService struct {
	opportunities ports.OpportunityRepository
	tasks         ports.TaskRepository
	customers     ports.CustomerRepository
	cache         ports.DashboardCache
	logger        zerolog.Logger
}

func NewDashboardService(
	opportunities ports.OpportunityRepository,
	tasks ports.TaskRepository,
	customers ports.CustomerRepository,
	cache ports.DashboardCache,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		opportunities: opportunities,
		tasks:         tasks,
		customers:     customers,
		cache:         cache,
		logger:        logger,
	}
}

func (s *DashboardService) Summary(ctx context.Context, owner string) (*ports.DashboardSummary, error) {
	if cached, ok := s.cache.Get(ctx, owner); ok {
		return cached, nil
	}

	opps, err := s.opportunities.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	var totalRevenue float64
	activeCustomers := make(map[string]struct{})
	for _, o := range opps {
		totalRevenue += o.Amount
		activeCustomers[o.CustomerID] = struct{}{}
	}

	won, err := s.opportunities.ListByOwnerAndStage(ctx, owner, domain.StageClosedWon)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	recent, err := s.customers.LastByOwner(ctx, owner, recentCustomerLimit)
	if err != nil {
		return nil, err
	}

	summary := &ports.DashboardSummary{
		TotalRevenue:    totalRevenue,
		ActiveCustomers: len(activeCustomers),
		Tasks:           tasks,
		MonthlySales:    monthlySales(won),
		RecentCustomers: recent,
	}

	s.cache.Set(ctx, owner, summary)
	return summary, nil
}

// monthlySales buckets closed-won opportunities by close month, ascending.
func monthlySales(won []domain.Opportunity) []ports.MonthlySales {
	buckets := make(map[string]float64)
	for _, o := range won {
		buckets[o.CloseDate.UTC().Format("2006-01")] += o.Amount
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	sales := make([]ports.MonthlySales, 0, len(months))
	for _, m := range months {
		sales = append(sales, ports.MonthlySales{Month: m, Total: buckets[m]})
	}
	return sales
}
