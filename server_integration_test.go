package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupTestServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN to run them.
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	jwtSecret = []byte("integration-test-secret")
	_ = os.Setenv("UPLOAD_BASE", t.TempDir())
	initDB()
	r := gin.New()
	setupRoutes(r)
	return r
}

func TestFullFlow(t *testing.T) {
	r := setupTestServer(t)

	// 1. Login as the seeded admin
	loginBody, _ := json.Marshal(map[string]string{"email": "admin@eglisemanager.com", "password": "admin123"})
	resp := performRequest(r, http.MethodPost, "/api/auth/login", bytes.NewBuffer(loginBody), "")
	if resp.Code != 200 {
		t.Fatalf("login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var loginResp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &loginResp)
	token, _ := loginResp["token"].(string)
	if token == "" {
		t.Fatalf("empty token in login response: %+v", loginResp)
	}
	adminEmail := loginResp["email"].(string)

	// 2. Create a member (fires the MEMBER fan-out)
	memberBody, _ := json.Marshal(map[string]any{
		"firstName": "Kossi", "lastName": "Agbeko", "status": "Nouveau",
		"arrivalDate": time.Now().Format("2006-01-02"),
	})
	resp = performRequest(r, http.MethodPost, "/api/members", bytes.NewBuffer(memberBody), token)
	if resp.Code != 201 {
		t.Fatalf("create member failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 3. Record an income and an expense
	for _, tx := range []map[string]any{
		{"date": "2026-08-01", "category": "Dîme", "amount": 1000.0, "type": "INCOME", "account": "CAISSE"},
		{"date": "2026-08-10", "category": "Entretien", "amount": 400.0, "type": "EXPENSE", "account": "BANQUE"},
	} {
		body, _ := json.Marshal(tx)
		resp = performRequest(r, http.MethodPost, "/api/transactions", bytes.NewBuffer(body), token)
		if resp.Code != 201 {
			t.Fatalf("create transaction failed status=%d body=%s", resp.Code, resp.Body.String())
		}
	}

	// 4. Treasury stats: total balance must equal the sum of account balances
	resp = performRequest(r, http.MethodGet, "/api/transactions/stats", nil, token)
	if resp.Code != 200 {
		t.Fatalf("stats failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var stats map[string]float64
	_ = json.Unmarshal(resp.Body.Bytes(), &stats)
	if got, want := stats["totalBalance"], stats["currentCaisseBalance"]+stats["currentBanqueBalance"]; got != want {
		t.Fatalf("balance identity violated: total=%v caisse+banque=%v", got, want)
	}

	// 5. Monthly stats: at most 6 points, ascending
	resp = performRequest(r, http.MethodGet, "/api/transactions/monthly-stats", nil, token)
	if resp.Code != 200 {
		t.Fatalf("monthly stats failed status=%d", resp.Code)
	}
	var series []map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &series)
	if len(series) == 0 || len(series) > 6 {
		t.Fatalf("unexpected series length %d", len(series))
	}

	// 6. The admin opted in to everything: unread notifications exist,
	// read-all brings the count to zero
	resp = performRequest(r, http.MethodPut, "/api/notifications/read-all?email="+adminEmail, nil, token)
	if resp.Code != 200 {
		t.Fatalf("read-all failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	resp = performRequest(r, http.MethodGet, "/api/notifications/unread-count?email="+adminEmail, nil, token)
	if resp.Code != 200 {
		t.Fatalf("unread-count failed status=%d", resp.Code)
	}
	var count int64
	_ = json.Unmarshal(resp.Body.Bytes(), &count)
	if count != 0 {
		t.Fatalf("expected 0 unread after read-all, got %d", count)
	}

	// 7. Export carries the version tag
	resp = performRequest(r, http.MethodGet, "/api/users/export-data", nil, token)
	if resp.Code != 200 {
		t.Fatalf("export failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var export map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &export)
	if export["version"] != "1.0" {
		t.Fatalf("unexpected export version: %v", export["version"])
	}

	// 8. Super member lifecycle
	smEmail := fmt.Sprintf("sm-%d@example.com", time.Now().UnixNano())
	smBody, _ := json.Marshal(map[string]string{"email": smEmail, "fullName": "Super Membre", "password": "secret1"})
	resp = performRequest(r, http.MethodPost, "/api/users/create-super-member", bytes.NewBuffer(smBody), token)
	if resp.Code != 201 {
		t.Fatalf("create super member failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	resp = performRequest(r, http.MethodPost, "/api/users/create-super-member", bytes.NewBuffer(smBody), token)
	if resp.Code != 400 {
		t.Fatalf("duplicate super member should be 400, got %d", resp.Code)
	}
}
