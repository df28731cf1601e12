package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newTestServer(t)

	id := registerUser(t, r, "stud1", "s@x.com", "pw2", "student")
	assert.NotZero(t, id)

	token := loginUser(t, r, "s@x.com", "pw2")
	assert.NotEmpty(t, token)
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "noroleuser",
		"email":    "norole@x.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, w, &body)
	assert.Equal(t, "student", body.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestServer(t)

	registerUser(t, r, "first", "dup@x.com", "pw", "student")

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "second",
		"email":    "dup@x.com",
		"password": "pw",
		"role":     "student",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterUnknownRole(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "mentor1",
		"email":    "m@x.com",
		"password": "pw",
		"role":     "mentor",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	r, _ := newTestServer(t)

	registerUser(t, r, "stud1", "s@x.com", "pw2", "student")

	wrongPassword := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "s@x.com",
		"password": "nope",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "ghost@x.com",
		"password": "nope",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/projects", "this-is-not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPingIsPublic(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
