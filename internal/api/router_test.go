package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
	"github.com/grupocrm/crm-system/internal/core/service"
)

type memUserRepo struct {
	users map[string]*domain.User
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = user.Username
	r.users[clone.Username] = &clone
	out := clone
	return &out, nil
}

type memRoleRepo struct{}

func (memRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	if name != domain.RoleUser && name != domain.RoleAdmin {
		return nil, domain.ErrRoleNotFound
	}
	return &domain.Role{ID: name, Name: name}, nil
}

func (memRoleRepo) Seed(_ context.Context, _ ...string) error { return nil }

type fixedCustomerService struct{}

func (fixedCustomerService) List(_ context.Context, owner string) ([]domain.Customer, error) {
	return []domain.Customer{{ID: "c1", Owner: owner, Name: "Acme"}}, nil
}

func (fixedCustomerService) Create(_ context.Context, _ string, _ ports.CustomerInput) (*domain.Customer, error) {
	return nil, domain.ErrInvalidInput
}

func (fixedCustomerService) Update(_ context.Context, _, _ string, _ ports.CustomerInput) (*domain.Customer, error) {
	return nil, domain.ErrNotFound
}

func (fixedCustomerService) Delete(_ context.Context, _, _ string) error {
	return domain.ErrNotFound
}

type emptyContactService struct{}

func (emptyContactService) List(_ context.Context, _ string) ([]domain.Contact, error) {
	return []domain.Contact{}, nil
}

func (emptyContactService) Create(_ context.Context, _ string, _ ports.ContactInput) (*domain.Contact, error) {
	return nil, domain.ErrNotFound
}

func (emptyContactService) Update(_ context.Context, _, _ string, _ ports.ContactInput) (*domain.Contact, error) {
	return nil, domain.ErrNotFound
}

func (emptyContactService) Delete(_ context.Context, _, _ string) error { return domain.ErrNotFound }

type emptyOpportunityService struct{}

func (emptyOpportunityService) List(_ context.Context, _ string) ([]domain.Opportunity, error) {
	return []domain.Opportunity{}, nil
}

func (emptyOpportunityService) Create(_ context.Context, _ string, _ ports.OpportunityInput) (*domain.Opportunity, error) {
	return nil, domain.ErrNotFound
}

func (emptyOpportunityService) Update(_ context.Context, _, _ string, _ ports.OpportunityInput) (*domain.Opportunity, error) {
	return nil, domain.ErrNotFound
}

func (emptyOpportunityService) Delete(_ context.Context, _, _ string) error {
	return domain.ErrNotFound
}

type emptyTaskService struct{}

func (emptyTaskService) List(_ context.Context, _ string) ([]domain.Task, error) {
	return []domain.Task{}, nil
}

func (emptyTaskService) Create(_ context.Context, _ string, _ ports.TaskInput) (*domain.Task, error) {
	return nil, domain.ErrNotFound
}

func (emptyTaskService) Update(_ context.Context, _, _ string, _ ports.TaskInput) (*domain.Task, error) {
	return nil, domain.ErrNotFound
}

func (emptyTaskService) Delete(_ context.Context, _, _ string) error { return domain.ErrNotFound }

type emptyDashboardService struct{}

func (emptyDashboardService) Summary(_ context.Context, _ string) (*ports.DashboardSummary, error) {
	return &ports.DashboardSummary{}, nil
}

type emptyActivityService struct{}

func (emptyActivityService) Recent(_ context.Context, _ int64) ([]domain.Activity, error) {
	return []domain.Activity{}, nil
}

// TestRouter_AuthFlow drives the full request pipeline: registration, login,
// token-gated access, role gating and the public fallbacks, all through the
// real middleware stack.
func TestRouter_AuthFlow(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour, 0)
	auth := service.NewAuthService(&memUserRepo{users: make(map[string]*domain.User)}, memRoleRepo{}, tokens, domain.RoleUser)

	e := NewRouter(Dependencies{
		Auth:           auth,
		Tokens:         tokens,
		Customers:      fixedCustomerService{},
		Contacts:       emptyContactService{},
		Opportunities:  emptyOpportunityService{},
		Tasks:          emptyTaskService{},
		Dashboard:      emptyDashboardService{},
		Activities:     emptyActivityService{},
		AllowedOrigins: []string{"*"},
		Logger:         zerolog.Nop(),
	})

	do := func(method, path, body, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	var token string

	t.Run("register", func(t *testing.T) {
		rec := do(http.MethodPost, "/auth/register",
			`{"username":"alice","email":"alice@example.com","password":"pass12345"}`, "")
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if strings.Contains(rec.Body.String(), "pass12345") || strings.Contains(rec.Body.String(), "$2a$") {
			t.Fatalf("credentials leaked into response: %s", rec.Body.String())
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		rec := do(http.MethodPost, "/auth/register",
			`{"username":"alice","email":"alice@example.com","password":"pass12345"}`, "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("login", func(t *testing.T) {
		rec := do(http.MethodPost, "/auth/login",
			`{"username":"alice","password":"pass12345"}`, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		token, _ = resp["token"].(string)
		if token == "" {
			t.Fatalf("expected a token in the login response")
		}
	})

	t.Run("login failures are opaque", func(t *testing.T) {
		wrongPass := do(http.MethodPost, "/auth/login",
			`{"username":"alice","password":"wrong1234"}`, "")
		unknownUser := do(http.MethodPost, "/auth/login",
			`{"username":"ghost","password":"wrong1234"}`, "")

		if wrongPass.Code != http.StatusUnauthorized || unknownUser.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, unknownUser.Code)
		}
		if wrongPass.Body.String() != unknownUser.Body.String() {
			t.Fatalf("failure responses must not reveal which part was wrong: %s vs %s",
				wrongPass.Body.String(), unknownUser.Body.String())
		}
	})

	t.Run("protected route with token", func(t *testing.T) {
		rec := do(http.MethodGet, "/customers", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "Acme") {
			t.Fatalf("expected customer payload, got %s", rec.Body.String())
		}
	})

	t.Run("protected route without token", func(t *testing.T) {
		rec := do(http.MethodGet, "/customers", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("protected route with tampered token", func(t *testing.T) {
		tampered := token + "x"
		rec := do(http.MethodGet, "/customers", "", tampered)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("admin route forbidden for user role", func(t *testing.T) {
		rec := do(http.MethodGet, "/admin/activities", "", token)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("public route ignores broken token", func(t *testing.T) {
		rec := do(http.MethodGet, "/health", "", "broken.token.here")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
