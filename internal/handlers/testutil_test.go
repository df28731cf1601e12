package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/devtrack-dev/devtrack/db"
	"github.com/devtrack-dev/devtrack/internal/auth"
	"github.com/devtrack-dev/devtrack/internal/router"
)

const fallbackAdminEmail = "fallback@devtrack.test"

var dbCounter int64

// newTestServer wires the full router against a fresh in-memory sqlite
// database, exactly as main does against postgres.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(conn))
	require.NoError(t, db.SeedRoles(conn))

	tokens := auth.NewTokenManager("test-secret", time.Hour)

	return router.NewRouter(conn, tokens, fallbackAdminEmail), conn
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func registerUser(t *testing.T, r *gin.Engine, username, email, password, role string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": password,
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, w, &body)

	return body.User.ID
}

func loginUser(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, w, &body)
	require.NotEmpty(t, body.AccessToken)

	return body.AccessToken
}

// seedStudentWithProject registers a student, logs them in and creates one
// valid project, returning ids and the token.
func seedStudentWithProject(t *testing.T, r *gin.Engine, username, email string) (userID uint, token string, projectID uint) {
	t.Helper()

	userID = registerUser(t, r, username, email, "pw-"+username, "student")
	token = loginUser(t, r, email, "pw-"+username)

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, gin.H{
		"name":        "Tracker for " + username,
		"description": "A sufficiently long description for validation",
		"github_link": "https://github.com/" + username + "/tracker",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var project struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &project)

	return userID, token, project.ID
}
