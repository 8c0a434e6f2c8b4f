package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/db"
	"github.com/freecrm-dev/freecrm/internal/auth"
	"github.com/freecrm-dev/freecrm/internal/handlers"
	"github.com/freecrm-dev/freecrm/internal/router"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.Migrate(database))

	h := handlers.New(database, zerolog.Nop(), zerolog.Nop(), "")

	return router.NewRouter(database, h), database
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer

	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
		"confirm":  "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var userResp struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &userResp))

	token, err := auth.GenerateJWT(userResp.User.ID, email)
	require.NoError(t, err)

	return token
}

func TestRegisterLoginFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Ada",
		"email":    "Ada@Example.com",
		"password": "secret123",
		"confirm":  "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Same email with different case conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Ada Again",
		"email":    "ada@example.com",
		"password": "secret123",
		"confirm":  "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutesRequireAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/api/clients", "/api/projects", "/api/payments", "/api/dashboard", "/api/export"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestCrossUserAccessIsNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	aliceToken := registerAndLogin(t, r, "alice@example.com")
	bobToken := registerAndLogin(t, r, "bob@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/clients", aliceToken, gin.H{
		"name":  "Ada",
		"email": "ada@client.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Bob cannot see or edit Alice's client; existence stays hidden.
	w = doJSON(t, r, http.MethodGet, "/api/clients", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/clients/%d", created.ID), bobToken, gin.H{
		"name":  "Hijacked",
		"email": "x@y.co",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/clients/%d", created.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted": false}`, w.Body.String())
}

func TestProjectReferenceValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	aliceToken := registerAndLogin(t, r, "alice@example.com")
	bobToken := registerAndLogin(t, r, "bob@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/clients", aliceToken, gin.H{
		"name":  "Ada",
		"email": "ada@client.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var client struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &client))

	w = doJSON(t, r, http.MethodPost, "/api/projects", bobToken, gin.H{
		"title":     "Steal",
		"client_id": client.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbackValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "ada@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/feedback", token, gin.H{
		"name":    "Ada",
		"message": "   ",
		"type":    "bug",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/feedback", token, gin.H{
		"message": "love the app",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

func TestExportDownload(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "ada@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/export", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=crm_export.zip", w.Header().Get("Content-Disposition"))
	// Zip magic number.
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}
