package storage

import (
	"fmt"
	"sync"
	"time"

	"vakildesk/internal/models"
)

// Plan prices in rupees.
const (
	ProMonthlyPrice = 999
	ProYearlyPrice  = 9990
)

// PlanStore holds the single Pro-plan entitlement flag plus the subscription
// invoice history. Every premium gate in the product reads the same flag.
type PlanStore struct {
	mu       sync.RWMutex
	pro      bool
	invoices []models.SubscriptionInvoice
}

func NewPlanStore(pro bool, history []models.SubscriptionInvoice) *PlanStore {
	return &PlanStore{
		pro:      pro,
		invoices: append([]models.SubscriptionInvoice(nil), history...),
	}
}

// IsProPlan reports the entitlement flag.
func (s *PlanStore) IsProPlan() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pro
}

// Invoices returns a copy of the billing history, newest first.
func (s *PlanStore) Invoices() []models.SubscriptionInvoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SubscriptionInvoice(nil), s.invoices...)
}

// Upgrade flips the flag on and records a paid invoice for the chosen cycle.
// Called after the simulated checkout succeeds.
func (s *PlanStore) Upgrade(cycle string) models.SubscriptionInvoice {
	amount := ProMonthlyPrice
	if cycle == "yearly" {
		amount = ProYearlyPrice
	}
	now := time.Now()
	inv := models.SubscriptionInvoice{
		ID:     fmt.Sprintf("INV-%d", now.Unix()),
		Date:   now.Format("2006-01-02"),
		Amount: amount,
		Status: "Paid",
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pro = true
	s.invoices = append([]models.SubscriptionInvoice{inv}, s.invoices...)
	return inv
}

// Downgrade flips the flag off. History is kept.
func (s *PlanStore) Downgrade() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pro = false
}
