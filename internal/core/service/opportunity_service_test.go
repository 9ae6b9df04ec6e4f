package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
)

func opportunityFixture(t *testing.T) (*OpportunityService, *stubOpportunityRepo, string) {
	t.Helper()
	customers := newStubCustomerRepo()
	customer, err := customers.Insert(context.Background(), &domain.Customer{
		Owner: "alice", Name: "Acme", Status: domain.CustomerActive,
	})
	if err != nil {
		t.Fatalf("seeding customer: %v", err)
	}

	repo := newStubOpportunityRepo()
	svc := NewOpportunityService(repo, customers, &recorderStub{}, zerolog.Nop())
	return svc, repo, customer.ID
}

func TestOpportunityService_Create_Defaults(t *testing.T) {
	svc, _, customerID := opportunityFixture(t)

	created, err := svc.Create(context.Background(), "alice", ports.OpportunityInput{
		CustomerID: customerID,
		Name:       "Big deal",
		Amount:     1000,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated ID")
	}
	if created.Stage != domain.StageProspecting {
		t.Fatalf("expected default stage prospecting, got %s", created.Stage)
	}
	if created.Level != domain.LevelMedium {
		t.Fatalf("expected default level medium, got %s", created.Level)
	}
}

func TestOpportunityService_Create_UnknownCustomer(t *testing.T) {
	svc, _, _ := opportunityFixture(t)

	_, err := svc.Create(context.Background(), "alice", ports.OpportunityInput{
		CustomerID: "missing",
		Name:       "Orphan deal",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown customer, got %v", err)
	}
}

func TestOpportunityService_Create_ForeignCustomer(t *testing.T) {
	svc, _, customerID := opportunityFixture(t)

	// The customer exists but belongs to alice, not bob.
	_, err := svc.Create(context.Background(), "bob", ports.OpportunityInput{
		CustomerID: customerID,
		Name:       "Cross-tenant deal",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign customer, got %v", err)
	}
}

func TestOpportunityService_Create_InvalidInput(t *testing.T) {
	svc, _, customerID := opportunityFixture(t)

	cases := []ports.OpportunityInput{
		{CustomerID: customerID, Name: "bad stage", Stage: "won"},
		{CustomerID: customerID, Name: "bad level", Level: "urgent"},
		{CustomerID: customerID, Name: "negative", Amount: -1},
	}
	for _, input := range cases {
		if _, err := svc.Create(context.Background(), "alice", input); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", input, err)
		}
	}
}

func TestOpportunityService_Update_Stage(t *testing.T) {
	svc, repo, customerID := opportunityFixture(t)

	created, err := svc.Create(context.Background(), "alice", ports.OpportunityInput{
		CustomerID: customerID,
		Name:       "Big deal",
		Amount:     1000,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	closeDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), "alice", created.ID, ports.OpportunityInput{
		Name:      "Big deal",
		Amount:    1500,
		Stage:     domain.StageClosedWon,
		CloseDate: closeDate,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Stage != domain.StageClosedWon || updated.Amount != 1500 {
		t.Fatalf("unexpected opportunity: %+v", updated)
	}

	won, err := repo.ListByOwnerAndStage(context.Background(), "alice", domain.StageClosedWon)
	if err != nil {
		t.Fatalf("listing won deals: %v", err)
	}
	if len(won) != 1 || !won[0].CloseDate.Equal(closeDate) {
		t.Fatalf("closed-won deal not persisted: %+v", won)
	}
}
