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

func adminOrders(t *testing.T, server *httptest.Server) []*model.Order {
	t.Helper()

	var orders []*model.Order
	require.NoError(t, json.Unmarshal([]byte(fetchList(t, server.URL+"/api/admin/orders")), &orders))
	return orders
}

func submitTestOrder(t *testing.T, server *httptest.Server) string {
	t.Helper()

	body, contentType := multipartBody(t, map[string]string{
		"name":          "Jordan Okafor",
		"email":         "jordan@example.com",
		"phone":         "+254700000000",
		"project_title": "Greenhouse monitor",
		"description":   "Sensor dashboard for a greenhouse",
		"budget":        "5000",
		"timeline":      "2 months",
	}, formFile{field: "attachments", name: "brief.pdf", content: "pdf-bytes"})

	resp := doRequest(t, http.MethodPost, server.URL+"/api/orders", contentType, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]string
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &created))
	require.NotEmpty(t, created["id"])
	require.Equal(t, model.OrderStatusPending, created["status"])
	return created["id"]
}

func TestSubmitOrderEndpoint(t *testing.T) {
	server := newAdminTestServer(t)

	id := submitTestOrder(t, server)

	orders := adminOrders(t, server)
	require.Len(t, orders, 1)
	assert.Equal(t, id, orders[0].ID)
	assert.Equal(t, "jordan@example.com", orders[0].Email)
	assert.Len(t, orders[0].FileURLs, 1)
}

func TestSubmitOrderEndpointValidation(t *testing.T) {
	server := newAdminTestServer(t)

	// Missing email
	body, contentType := multipartBody(t, map[string]string{
		"name":          "Jordan Okafor",
		"project_title": "Greenhouse monitor",
		"description":   "Sensor dashboard",
	})
	resp := doRequest(t, http.MethodPost, server.URL+"/api/orders", contentType, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Disallowed attachment type
	body, contentType = multipartBody(t, map[string]string{
		"name":          "Jordan Okafor",
		"email":         "jordan@example.com",
		"project_title": "Greenhouse monitor",
		"description":   "Sensor dashboard",
	}, formFile{field: "attachments", name: "tool.exe", content: "exe-bytes"})
	resp = doRequest(t, http.MethodPost, server.URL+"/api/orders", contentType, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Empty(t, adminOrders(t, server))
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	server := newAdminTestServer(t)
	id := submitTestOrder(t, server)
	listURL := server.URL + "/api/admin/orders"

	resp := doRequest(t, http.MethodPatch, listURL+"/"+id+"/status", "application/json",
		strings.NewReader(`{"status":"in-progress"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := readBody(t, resp)
	assert.Contains(t, updated, `"status":"in-progress"`)
	assertFreshList(t, listURL, updated)

	resp = doRequest(t, http.MethodPatch, listURL+"/"+id+"/status", "application/json",
		strings.NewReader(`{"status":"archived"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, http.MethodPatch, listURL+"/missing/status", "application/json",
		strings.NewReader(`{"status":"completed"}`))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	orders := adminOrders(t, server)
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusInProgress, orders[0].Status)
}

func TestDeleteOrderEndpoint(t *testing.T) {
	server := newAdminTestServer(t)
	id := submitTestOrder(t, server)
	listURL := server.URL + "/api/admin/orders"

	resp := doRequest(t, http.MethodDelete, listURL+"/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assertFreshList(t, listURL, readBody(t, resp))
	assert.Empty(t, adminOrders(t, server))
}

func TestStatsEndpoint(t *testing.T) {
	server := newAdminTestServer(t)

	first := submitTestOrder(t, server)
	body, contentType := multipartBody(t, map[string]string{
		"name":          "Amina Yusuf",
		"email":         "amina@example.com",
		"project_title": "Clinic queue system",
		"description":   "Ticketing for a walk-in clinic",
	})
	resp := doRequest(t, http.MethodPost, server.URL+"/api/orders", contentType, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, http.MethodPatch, server.URL+"/api/admin/orders/"+first+"/status", "application/json",
		strings.NewReader(`{"status":"completed"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	createTestProject(t, server)

	resp = doRequest(t, http.MethodGet, server.URL+"/api/admin/stats", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"total_projects":1,"total_orders":2,"pending_orders":1,"completed_orders":1}`, readBody(t, resp))
}
