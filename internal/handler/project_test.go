package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/innovelous/agency/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminProjects(t *testing.T, server *httptest.Server) []*model.Project {
	t.Helper()

	var projects []*model.Project
	require.NoError(t, json.Unmarshal([]byte(fetchList(t, server.URL+"/api/admin/projects")), &projects))
	return projects
}

func createTestProject(t *testing.T, server *httptest.Server) *model.Project {
	t.Helper()

	body, contentType := multipartBody(t, map[string]string{
		"name":         "Fleet Tracker",
		"description":  "GPS fleet tracking dashboard",
		"demo_url":     "https://fleet.example.com",
		"category":     "iot",
		"pinned":       "true",
		"technologies": `["Go","React","MQTT"]`,
	},
		formFile{field: "images", name: "dashboard.png", content: "png-1"},
		formFile{field: "images", name: "map.jpg", content: "jpg-2"},
	)

	resp := doRequest(t, http.MethodPost, server.URL+"/api/admin/projects", contentType, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assertFreshList(t, server.URL+"/api/admin/projects", readBody(t, resp))

	projects := adminProjects(t, server)
	require.Len(t, projects, 1)
	return projects[0]
}

func TestCreateProjectEndpoint(t *testing.T) {
	server := newAdminTestServer(t)

	project := createTestProject(t, server)

	assert.Equal(t, "Fleet Tracker", project.Name)
	assert.Equal(t, model.StringList{"Go", "React", "MQTT"}, project.Technologies)
	assert.Equal(t, "iot", project.Category)
	assert.True(t, project.Pinned)
	assert.Len(t, project.ImageURLs, 2)
}

func TestCreateProjectEndpointRejectsMalformedTechnologies(t *testing.T) {
	server := newAdminTestServer(t)

	body, contentType := multipartBody(t, map[string]string{
		"name":         "Fleet Tracker",
		"description":  "GPS fleet tracking dashboard",
		"technologies": "Go, React",
	}, formFile{field: "images", name: "dashboard.png", content: "png-1"})

	resp := doRequest(t, http.MethodPost, server.URL+"/api/admin/projects", contentType, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "technologies")
	assert.Empty(t, adminProjects(t, server))
}

func TestCreateProjectEndpointRejectsInvalidInput(t *testing.T) {
	server := newAdminTestServer(t)

	// No images
	body, contentType := multipartBody(t, map[string]string{
		"name":        "Fleet Tracker",
		"description": "GPS fleet tracking dashboard",
	})
	resp := doRequest(t, http.MethodPost, server.URL+"/api/admin/projects", contentType, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "image")

	// Missing name
	body, contentType = multipartBody(t, map[string]string{
		"description": "GPS fleet tracking dashboard",
	}, formFile{field: "images", name: "dashboard.png", content: "png-1"})
	resp = doRequest(t, http.MethodPost, server.URL+"/api/admin/projects", contentType, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Empty(t, adminProjects(t, server))
}

func TestUpdateProjectEndpoint(t *testing.T) {
	server := newAdminTestServer(t)
	project := createTestProject(t, server)

	resp := doRequest(t, http.MethodPut, server.URL+"/api/admin/projects/"+project.ID, "application/json",
		strings.NewReader(`{"name":"Fleet Tracker v2","description":"Reworked dashboard","technologies":["Go"],"category":"iot","pinned":false}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := readBody(t, resp)
	assert.Contains(t, updated, "Fleet Tracker v2")
	assertFreshList(t, server.URL+"/api/admin/projects", updated)

	projects := adminProjects(t, server)
	require.Len(t, projects, 1)
	assert.Equal(t, model.StringList{"Go"}, projects[0].Technologies)
	assert.False(t, projects[0].Pinned)

	resp = doRequest(t, http.MethodPut, server.URL+"/api/admin/projects/missing", "application/json",
		strings.NewReader(`{"name":"X","description":"Y"}`))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProjectImageEndpoints(t *testing.T) {
	server := newAdminTestServer(t)
	project := createTestProject(t, server)
	require.Len(t, project.ImageURLs, 2)

	body, contentType := multipartBody(t, nil,
		formFile{field: "images", name: "detail.webp", content: "webp-3"})
	resp := doRequest(t, http.MethodPost, server.URL+"/api/admin/projects/"+project.ID+"/images", contentType, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assertFreshList(t, server.URL+"/api/admin/projects", readBody(t, resp))

	projects := adminProjects(t, server)
	require.Len(t, projects[0].ImageURLs, 3)

	removed := projects[0].ImageURLs[0]
	resp = doRequest(t, http.MethodDelete, server.URL+"/api/admin/projects/"+project.ID+"/images", "application/json",
		strings.NewReader(`{"image_url":"`+removed+`"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assertFreshList(t, server.URL+"/api/admin/projects", readBody(t, resp))

	projects = adminProjects(t, server)
	require.Len(t, projects[0].ImageURLs, 2)
	assert.NotContains(t, projects[0].ImageURLs, removed)

	// URL not on this project
	resp = doRequest(t, http.MethodDelete, server.URL+"/api/admin/projects/"+project.ID+"/images", "application/json",
		strings.NewReader(`{"image_url":"https://cdn.test/project-images/other.png"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteProjectEndpoint(t *testing.T) {
	server := newAdminTestServer(t)
	project := createTestProject(t, server)

	resp := doRequest(t, http.MethodDelete, server.URL+"/api/admin/projects/"+project.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assertFreshList(t, server.URL+"/api/admin/projects", readBody(t, resp))
	assert.Empty(t, adminProjects(t, server))

	resp = doRequest(t, http.MethodDelete, server.URL+"/api/admin/projects/"+project.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
