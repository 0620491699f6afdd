package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"artha/internal/advisory"
	"artha/internal/testutil"
)

var emailCounter atomic.Int64

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.SetupTestDB(t)
	return NewRouter(db, advisory.NewRuleBased()), db
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, router *gin.Engine) string {
	t.Helper()

	body := map[string]any{
		"name":           "Handler Test",
		"email":          fmt.Sprintf("handler%d@example.com", emailCounter.Add(1)),
		"password":       "password123",
		"monthly_income": "50000",
	}
	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", body, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("registration failed: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("no token in registration response")
	}
	return resp.Token
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, w, &resp)
	return resp.Error.Code
}
