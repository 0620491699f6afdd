package handlers

import (
	"math"
	"net/http"
	"testing"
)

func TestToolsEndpoints(t *testing.T) {
	router, _ := setupTest(t)
	token := registerUser(t, router)

	t.Run("emi", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/tools/emi", map[string]any{
			"principal":           800000,
			"annual_rate_percent": 9.5,
			"months":              48,
		}, token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		var resp struct {
			EMI           float64 `json:"emi"`
			TotalPayment  float64 `json:"total_payment"`
			TotalInterest float64 `json:"total_interest"`
		}
		decodeBody(t, w, &resp)
		if resp.EMI < 20000 || resp.EMI > 20200 {
			t.Errorf("emi = %v, want around 20100", resp.EMI)
		}
		if math.Abs(resp.TotalPayment-resp.EMI*48) > 0.01 {
			t.Errorf("total payment inconsistent with emi: %v", resp.TotalPayment)
		}
	})

	t.Run("emi requires positive principal", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/tools/emi", map[string]any{
			"principal": 0, "annual_rate_percent": 10, "months": 12,
		}, token)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("rent vs buy", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/tools/rent-vs-buy", map[string]any{
			"property_price": 9000000,
			"monthly_rent":   25000,
		}, token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Ratio   float64 `json:"ratio"`
			Verdict string  `json:"verdict"`
		}
		decodeBody(t, w, &resp)
		if resp.Verdict != "Rent" {
			t.Errorf("verdict = %q at ratio %v, want Rent", resp.Verdict, resp.Ratio)
		}
	})

	t.Run("step up sip returns one row per year", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/tools/step-up-sip", map[string]any{
			"initial_monthly":     5000,
			"annual_rate_percent": 12,
			"step_up_percent":     10,
			"years":               10,
		}, token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Series []struct {
				Year  int     `json:"year"`
				Value float64 `json:"value"`
			} `json:"series"`
		}
		decodeBody(t, w, &resp)
		if len(resp.Series) != 10 {
			t.Fatalf("series length = %d, want 10", len(resp.Series))
		}
		for i := 1; i < len(resp.Series); i++ {
			if resp.Series[i].Value <= resp.Series[i-1].Value {
				t.Fatal("projection must grow year over year at a positive rate")
			}
		}
	})

	t.Run("cost of delay rejects delay past horizon", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/tools/cost-of-delay", map[string]any{
			"monthly": 5000, "annual_rate_percent": 12, "horizon_years": 10, "delay_years": 10,
		}, token)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("car affordability uses the default rate", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/tools/car-affordability", map[string]any{
			"price": 1000000, "monthly_income": 250000,
		}, token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		var resp struct {
			DownPayment float64 `json:"down_payment"`
			Affordable  bool    `json:"affordable"`
		}
		decodeBody(t, w, &resp)
		if resp.DownPayment != 200000 {
			t.Errorf("down payment = %v, want 200000", resp.DownPayment)
		}
		if !resp.Affordable {
			t.Error("an EMI near 20k on 250k income must be affordable")
		}
	})

	t.Run("allocation", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/tools/allocation", map[string]any{"age": 30}, token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var resp struct {
			EquityPercent float64 `json:"equity_percent"`
			DebtPercent   float64 `json:"debt_percent"`
		}
		decodeBody(t, w, &resp)
		if resp.EquityPercent != 70 || resp.DebtPercent != 30 {
			t.Errorf("allocation = %v/%v, want 70/30", resp.EquityPercent, resp.DebtPercent)
		}
	})

	t.Run("tools require auth", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/tools/fire", map[string]any{"monthly_expense": 30000}, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestAdvisoryEndpoints(t *testing.T) {
	router, _ := setupTest(t)
	token := registerUser(t, router)

	t.Run("spending insight", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/advisory/spending", map[string]any{
			"category": "Food", "amount": "4500",
		}, token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
	})

	t.Run("purchase impact uses profile income", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/advisory/purchase-impact", map[string]any{
			"item": "Phone", "price": "30000",
		}, token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		var impact struct {
			UtilityScore int    `json:"utility_score"`
			Verdict      string `json:"verdict"`
		}
		decodeBody(t, w, &impact)
		if impact.Verdict == "" {
			t.Error("expected a verdict")
		}
	})

	t.Run("receipt import is unavailable offline", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/advisory/receipt", map[string]any{
			"image": "aGVsbG8=",
		}, token)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503: %s", w.Code, w.Body.String())
		}
		if code := errorCode(t, w); code != "ADVISORY_UNAVAILABLE" {
			t.Errorf("code = %s, want ADVISORY_UNAVAILABLE", code)
		}
	})

	t.Run("chat", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/advisory/chat", map[string]any{
			"query": "How much should I save?",
		}, token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
	})
}

func TestSnapshotEndpoints(t *testing.T) {
	router, _ := setupTest(t)
	token := registerUser(t, router)

	doRequest(t, router, http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "EXPENSE", "amount": "1500", "category": "Food", "description": "Groceries",
	}, token)

	t.Run("export and import round-trip", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/snapshot", nil, token)
		if w.Code != http.StatusOK {
			t.Fatalf("export status = %d: %s", w.Code, w.Body.String())
		}
		var state map[string]any
		decodeBody(t, w, &state)

		w = doRequest(t, router, http.MethodPost, "/api/v1/snapshot", state, token)
		if w.Code != http.StatusOK {
			t.Fatalf("import status = %d: %s", w.Code, w.Body.String())
		}

		w = doRequest(t, router, http.MethodGet, "/api/v1/transactions", nil, token)
		var resp struct {
			TotalItems int64 `json:"total_items"`
		}
		decodeBody(t, w, &resp)
		if resp.TotalItems != 1 {
			t.Errorf("total = %d after round-trip, want 1", resp.TotalItems)
		}
	})

	t.Run("version mismatch", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/snapshot", map[string]any{
			"version": 99, "user": map[string]any{"name": "X"},
		}, token)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if code := errorCode(t, w); code != "SNAPSHOT_VERSION" {
			t.Errorf("code = %s, want SNAPSHOT_VERSION", code)
		}
	})
}
