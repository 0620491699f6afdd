// Package integration exercises complete user journeys through the full
// HTTP stack against an in-memory database.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"artha/internal/advisory"
	"artha/internal/handlers"
	"artha/internal/testutil"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.SetupTestDB(t)
	return handlers.NewRouter(db, advisory.NewRuleBased())
}

func request(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d: %s", w.Code, want, w.Body.String())
	}
}

func signup(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w := request(t, router, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name":            "Integration User",
		"email":           email,
		"password":        "password123",
		"monthly_income":  "60000",
		"current_savings": "10000",
	}, "")
	mustStatus(t, w, http.StatusCreated)

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	return resp.Token
}
