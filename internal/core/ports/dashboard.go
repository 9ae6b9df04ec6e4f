package ports

import (
	"context"

	"github.com/grupocrm/crm-system/internal/core/domain"
)

// MonthlySales is one month's closed-won revenue bucket. Month is formatted
// as "2006-01" so lexical order equals chronological order.
type MonthlySales struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// DashboardSummary aggregates the landing-page figures for one user.
type DashboardSummary struct {
	TotalRevenue    float64           `json:"total_revenue"`
	ActiveCustomers int               `json:"active_customers"`
	Tasks           []domain.Task     `json:"tasks"`
	MonthlySales    []MonthlySales    `json:"monthly_sales"`
	RecentCustomers []domain.Customer `json:"recent_customers"`
}

type DashboardService interface {
	Summary(ctx context.Context, owner string) (*DashboardSummary, error)
}

// DashboardCache is a short-lived per-user cache for computed summaries.
// A cache miss or a cache backend error both return ok=false; the service
// then recomputes from the repositories.
type DashboardCache interface {
	Get(ctx context.Context, owner string) (*DashboardSummary, bool)
	Set(ctx context.Context, owner string, summary *DashboardSummary)
}
