package integration

import (
	"net/http"
	"testing"
	"time"
)

// A complete month in the life of a user: sign up, record income and
// expenses, lend money, watch the dashboard, settle the loan.
func TestLedgerJourney(t *testing.T) {
	router := newTestServer(t)
	token := signup(t, router, "journey@example.com")
	yesterday := time.Now().AddDate(0, 0, -1).Format(time.RFC3339)

	w := request(t, router, http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "INCOME", "amount": "60000", "description": "Salary", "date": yesterday,
	}, token)
	mustStatus(t, w, http.StatusCreated)

	w = request(t, router, http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "EXPENSE", "amount": "18000", "category": "Bills", "description": "Rent", "date": yesterday,
	}, token)
	mustStatus(t, w, http.StatusCreated)

	w = request(t, router, http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "EXPENSE", "amount": "6000", "category": "Education", "description": "Course", "date": yesterday,
	}, token)
	mustStatus(t, w, http.StatusCreated)

	w = request(t, router, http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "LENT", "amount": "5000", "category": "Udhaar", "description": "To Ravi",
		"related_person": "Ravi", "date": yesterday,
	}, token)
	mustStatus(t, w, http.StatusCreated)
	var loan struct {
		ID string `json:"id"`
	}
	decode(t, w, &loan)

	w = request(t, router, http.MethodGet, "/api/v1/dashboard/overview", nil, token)
	mustStatus(t, w, http.StatusOK)
	var overview struct {
		NetWorth   string `json:"net_worth"`
		KarmaScore int    `json:"karma_score"`
		OverBudget bool   `json:"over_budget"`
	}
	decode(t, w, &overview)
	// 10000 savings + 60000 income - 24000 expenses; the loan moves nothing.
	if overview.NetWorth != "46000" {
		t.Errorf("net worth = %s, want 46000", overview.NetWorth)
	}
	// 50 + 2 (income) + 1 (education)
	if overview.KarmaScore != 53 {
		t.Errorf("karma = %d, want 53", overview.KarmaScore)
	}

	w = request(t, router, http.MethodGet, "/api/v1/transactions?view=udhaar", nil, token)
	mustStatus(t, w, http.StatusOK)
	var udhaar struct {
		TotalItems int64 `json:"total_items"`
	}
	decode(t, w, &udhaar)
	if udhaar.TotalItems != 1 {
		t.Fatalf("outstanding udhaar = %d, want 1", udhaar.TotalItems)
	}

	w = request(t, router, http.MethodPatch, "/api/v1/transactions/"+loan.ID+"/settle", nil, token)
	mustStatus(t, w, http.StatusOK)

	w = request(t, router, http.MethodGet, "/api/v1/transactions?view=udhaar", nil, token)
	decode(t, w, &udhaar)
	if udhaar.TotalItems != 0 {
		t.Errorf("outstanding udhaar = %d after settling, want 0", udhaar.TotalItems)
	}

	w = request(t, router, http.MethodGet, "/api/v1/transactions?view=history", nil, token)
	var history struct {
		TotalItems int64 `json:"total_items"`
	}
	decode(t, w, &history)
	if history.TotalItems != 4 {
		t.Errorf("history = %d entries, want all 4 after settlement", history.TotalItems)
	}
}

// Two users' ledgers must stay invisible to each other.
func TestLedgerIsolation(t *testing.T) {
	router := newTestServer(t)
	alice := signup(t, router, "alice@example.com")
	bob := signup(t, router, "bob@example.com")

	w := request(t, router, http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "EXPENSE", "amount": "999", "category": "Food", "description": "Alice's dinner",
	}, alice)
	mustStatus(t, w, http.StatusCreated)
	var txn struct {
		ID string `json:"id"`
	}
	decode(t, w, &txn)

	w = request(t, router, http.MethodGet, "/api/v1/transactions", nil, bob)
	mustStatus(t, w, http.StatusOK)
	var list struct {
		TotalItems int64 `json:"total_items"`
	}
	decode(t, w, &list)
	if list.TotalItems != 0 {
		t.Errorf("bob sees %d of alice's entries", list.TotalItems)
	}

	w = request(t, router, http.MethodGet, "/api/v1/transactions/"+txn.ID, nil, bob)
	mustStatus(t, w, http.StatusNotFound)

	w = request(t, router, http.MethodPatch, "/api/v1/transactions/"+txn.ID+"/settle", nil, bob)
	mustStatus(t, w, http.StatusNotFound)
}

// Export, wipe by importing an empty snapshot, then restore the original.
func TestSnapshotBackupRestore(t *testing.T) {
	router := newTestServer(t)
	token := signup(t, router, "backup@example.com")

	for i := 0; i < 3; i++ {
		w := request(t, router, http.MethodPost, "/api/v1/transactions", map[string]any{
			"type": "EXPENSE", "amount": "100", "category": "Food", "description": "Snack",
		}, token)
		mustStatus(t, w, http.StatusCreated)
	}

	w := request(t, router, http.MethodGet, "/api/v1/snapshot", nil, token)
	mustStatus(t, w, http.StatusOK)
	var backup map[string]any
	decode(t, w, &backup)

	w = request(t, router, http.MethodPost, "/api/v1/snapshot", map[string]any{
		"version":      1,
		"user":         map[string]any{"name": "Integration User"},
		"transactions": []any{},
	}, token)
	mustStatus(t, w, http.StatusOK)

	w = request(t, router, http.MethodGet, "/api/v1/transactions", nil, token)
	var list struct {
		TotalItems int64 `json:"total_items"`
	}
	decode(t, w, &list)
	if list.TotalItems != 0 {
		t.Fatalf("ledger has %d entries after wiping import, want 0", list.TotalItems)
	}

	w = request(t, router, http.MethodPost, "/api/v1/snapshot", backup, token)
	mustStatus(t, w, http.StatusOK)

	w = request(t, router, http.MethodGet, "/api/v1/transactions", nil, token)
	decode(t, w, &list)
	if list.TotalItems != 3 {
		t.Errorf("ledger has %d entries after restore, want 3", list.TotalItems)
	}

	// The token still works: identity survived both imports.
	w = request(t, router, http.MethodGet, "/api/v1/profile", nil, token)
	mustStatus(t, w, http.StatusOK)
}
