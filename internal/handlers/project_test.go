package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func validProjectPayload() gin.H {
	return gin.H{
		"name":        "Capstone Tracker",
		"description": "A project tracker built for the backend course",
		"github_link": "https://github.com/stud1/capstone-tracker",
	}
}

func TestCreateProjectValidation(t *testing.T) {
	r, _ := newTestServer(t)

	registerUser(t, r, "stud1", "s@x.com", "pw2", "student")
	token := loginUser(t, r, "s@x.com", "pw2")

	cases := []struct {
		name     string
		mutate   func(gin.H)
		wantCode int
	}{
		{"name shorter than 7 is rejected", func(p gin.H) { p["name"] = "Short" }, http.StatusBadRequest},
		{"name of exactly 7 is accepted", func(p gin.H) { p["name"] = "Seven77" }, http.StatusCreated},
		{"description shorter than 20 is rejected", func(p gin.H) { p["description"] = "too short" }, http.StatusBadRequest},
		{"github link must point at github", func(p gin.H) { p["github_link"] = "https://gitlab.com/x/y" }, http.StatusBadRequest},
		{"valid payload is accepted", func(p gin.H) {}, http.StatusCreated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validProjectPayload()
			tc.mutate(payload)

			w := doJSON(t, r, http.MethodPost, "/api/projects", token, payload)
			assert.Equal(t, tc.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestCreateProjectOwnerIsCaller(t *testing.T) {
	r, _ := newTestServer(t)

	studentID := registerUser(t, r, "stud1", "s@x.com", "pw2", "student")
	token := loginUser(t, r, "s@x.com", "pw2")

	// owner_id in the body must not let a student plant projects on
	// others; it is forced back to the caller.
	payload := validProjectPayload()
	payload["owner_id"] = studentID + 100

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, payload)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var project struct {
		OwnerID uint `json:"owner_id"`
	}
	decodeBody(t, w, &project)
	assert.Equal(t, studentID, project.OwnerID)
}

func TestAdminCanCreateProjectForAnotherUser(t *testing.T) {
	r, _ := newTestServer(t)

	studentID := registerUser(t, r, "stud1", "s@x.com", "pw2", "student")
	registerUser(t, r, "admin1", "a@x.com", "pw1", "admin")
	adminToken := loginUser(t, r, "a@x.com", "pw1")

	payload := validProjectPayload()
	payload["owner_id"] = studentID

	w := doJSON(t, r, http.MethodPost, "/api/projects", adminToken, payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var project struct {
		OwnerID uint `json:"owner_id"`
	}
	decodeBody(t, w, &project)
	assert.Equal(t, studentID, project.OwnerID)
}

func TestUpdateProjectOwnership(t *testing.T) {
	r, _ := newTestServer(t)

	_, ownerToken, projectID := seedStudentWithProject(t, r, "owner1", "owner@x.com")
	_, otherToken, _ := seedStudentWithProject(t, r, "other1", "other@x.com")

	path := fmt.Sprintf("/api/projects/%d", projectID)

	w := doJSON(t, r, http.MethodPut, path, otherToken, gin.H{"name": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, path, ownerToken, gin.H{"name": "Renamed Tracker"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var project struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	decodeBody(t, w, &project)
	assert.Equal(t, "Renamed Tracker", project.Name)
	// Partial update: untouched fields survive.
	assert.NotEmpty(t, project.Description)
}

func TestUpdateProjectValidatesProvidedFields(t *testing.T) {
	r, _ := newTestServer(t)

	_, token, projectID := seedStudentWithProject(t, r, "owner1", "owner@x.com")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/projects/%d", projectID), token, gin.H{"name": "Short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminCanUpdateAnyProject(t *testing.T) {
	r, _ := newTestServer(t)

	_, _, projectID := seedStudentWithProject(t, r, "owner1", "owner@x.com")
	registerUser(t, r, "admin1", "a@x.com", "pw1", "admin")
	adminToken := loginUser(t, r, "a@x.com", "pw1")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/projects/%d", projectID), adminToken, gin.H{"name": "Admin Renamed"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteProjectIsAdminOnly(t *testing.T) {
	r, _ := newTestServer(t)

	_, ownerToken, projectID := seedStudentWithProject(t, r, "owner1", "owner@x.com")
	registerUser(t, r, "admin1", "a@x.com", "pw1", "admin")
	adminToken := loginUser(t, r, "a@x.com", "pw1")

	path := fmt.Sprintf("/api/projects/%d", projectID)

	// Even the owner cannot delete.
	w := doJSON(t, r, http.MethodDelete, path, ownerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, path, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, path, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProjectNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	registerUser(t, r, "stud1", "s@x.com", "pw2", "student")
	token := loginUser(t, r, "s@x.com", "pw2")

	w := doJSON(t, r, http.MethodGet, "/api/projects/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProjectsIsVisibleToAnyAuthenticatedUser(t *testing.T) {
	r, _ := newTestServer(t)

	seedStudentWithProject(t, r, "owner1", "owner@x.com")
	registerUser(t, r, "reader1", "reader@x.com", "pw", "student")
	readerToken := loginUser(t, r, "reader@x.com", "pw")

	w := doJSON(t, r, http.MethodGet, "/api/projects", readerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var projects []struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &projects)
	assert.Len(t, projects, 1)
}
