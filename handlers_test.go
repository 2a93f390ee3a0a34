package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"eglise/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setupRoutes(r)
	return r
}

func performRequest(r http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func testToken(t *testing.T, email, role string) string {
	t.Helper()
	jwtSecret = []byte("test-secret")
	token, err := generateToken(email, role)
	require.NoError(t, err)
	return token
}

// Wrong password and unknown email must produce the same 401 body.
func TestLoginFailureShapeIsUniform(t *testing.T) {
	mock, restore := newMockDB(t)
	defer restore()
	r := newTestRouter()
	jwtSecret = []byte("test-secret")

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	body, _ := json.Marshal(gin.H{"email": "ghost@example.com", "password": "x"})
	resp1 := performRequest(r, http.MethodPost, "/api/auth/login", bytes.NewReader(body), "")

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(authUserRow("admin@eglisemanager.com", "admin123"))
	body, _ = json.Marshal(gin.H{"email": "admin@eglisemanager.com", "password": "wrong"})
	resp2 := performRequest(r, http.MethodPost, "/api/auth/login", bytes.NewReader(body), "")

	assert.Equal(t, http.StatusUnauthorized, resp1.Code)
	assert.Equal(t, http.StatusUnauthorized, resp2.Code)
	assert.JSONEq(t, resp1.Body.String(), resp2.Body.String())
}

func TestLoginSuccessReturnsIdentity(t *testing.T) {
	mock, restore := newMockDB(t)
	defer restore()
	r := newTestRouter()
	jwtSecret = []byte("test-secret")

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(authUserRow("admin@eglisemanager.com", "admin123"))
	body, _ := json.Marshal(gin.H{"email": "admin@eglisemanager.com", "password": "admin123"})
	resp := performRequest(r, http.MethodPost, "/api/auth/login", bytes.NewReader(body), "")

	require.Equal(t, http.StatusOK, resp.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "Bearer", out["type"])
	assert.Equal(t, "ADMIN", out["role"])

	// the embedded identity resolves back to the same account
	email, role, err := parseToken(out["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "admin@eglisemanager.com", email)
	assert.Equal(t, "ADMIN", role)
}

func TestChurchConfigDefaultNotPersisted(t *testing.T) {
	mock, restore := newMockDB(t)
	defer restore()
	r := newTestRouter()
	token := testToken(t, "user@example.com", models.RoleUser)

	mock.ExpectQuery(`SELECT \* FROM "church_config"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	resp := performRequest(r, http.MethodGet, "/api/church-config", nil, token)

	require.Equal(t, http.StatusOK, resp.Code)
	var cfg models.ChurchConfig
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &cfg))
	assert.Equal(t, "Temple Emmanuel", cfg.ChurchName)
	assert.Zero(t, cfg.ID)
	// no INSERT may have been issued for the synthesized default
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsReadMissingIDIsNoOp(t *testing.T) {
	mock, restore := newMockDB(t)
	defer restore()
	r := newTestRouter()
	token := testToken(t, "user@example.com", models.RoleUser)

	mock.ExpectQuery(`SELECT \* FROM "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	resp := performRequest(r, http.MethodPut, "/api/notifications/999/read", nil, token)

	assert.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminOnlyRejectsRegularUser(t *testing.T) {
	_, restore := newMockDB(t)
	defer restore()
	r := newTestRouter()
	token := testToken(t, "user@example.com", models.RoleUser)

	resp := performRequest(r, http.MethodDelete, "/api/members/1", nil, token)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = performRequest(r, http.MethodGet, "/api/users/export-data", nil, token)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestMissingTokenRejected(t *testing.T) {
	_, restore := newMockDB(t)
	defer restore()
	r := newTestRouter()

	resp := performRequest(r, http.MethodGet, "/api/members", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestDeleteUserBlocksAdmin(t *testing.T) {
	mock, restore := newMockDB(t)
	defer restore()
	r := newTestRouter()
	token := testToken(t, "admin@eglisemanager.com", models.RoleAdmin)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(1, "admin@eglisemanager.com", models.RoleAdmin))
	resp := performRequest(r, http.MethodDelete, "/api/users/1", nil, token)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	// no DELETE may have been issued
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicEndpointsNeedNoToken(t *testing.T) {
	mock, restore := newMockDB(t)
	defer restore()
	r := newTestRouter()

	mock.ExpectQuery(`SELECT \* FROM "church_config"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "church_name"}).AddRow(1, "Temple Emmanuel"))
	resp := performRequest(r, http.MethodGet, "/api/public/church-info", nil, "")
	assert.Equal(t, http.StatusOK, resp.Code)
}
