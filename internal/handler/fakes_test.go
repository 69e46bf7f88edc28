package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/innovelous/agency/internal/markdown"
	"github.com/innovelous/agency/internal/model"
	"github.com/innovelous/agency/internal/repository"
	"github.com/innovelous/agency/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories backing the CRUD endpoint tests. They preserve
// insertion order so list responses are deterministic.

type memStorage struct {
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (m *memStorage) Save(bucket, path string, file io.Reader) error {
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	m.objects[bucket+"/"+path] = data
	return nil
}

func (m *memStorage) Delete(bucket, path string) error {
	delete(m.objects, bucket+"/"+path)
	return nil
}

func (m *memStorage) DeleteMany(bucket string, paths []string) error {
	for _, path := range paths {
		delete(m.objects, bucket+"/"+path)
	}
	return nil
}

func (m *memStorage) PublicURL(bucket, path string) string {
	return "https://cdn.test/" + bucket + "/" + path
}

func (m *memStorage) PathFromURL(url string) (string, string, bool) {
	rest, found := strings.CutPrefix(url, "https://cdn.test/")
	if !found {
		return "", "", false
	}
	bucket, path, found := strings.Cut(rest, "/")
	if !found {
		return "", "", false
	}
	return bucket, path, true
}

type memProjectRepo struct {
	projects map[string]*model.Project
	order    []string
}

func (m *memProjectRepo) Create(project *model.Project) error {
	m.projects[project.ID] = project
	m.order = append(m.order, project.ID)
	return nil
}

func (m *memProjectRepo) ByID(id string) (*model.Project, error) {
	project, ok := m.projects[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	return project, nil
}

func (m *memProjectRepo) All() ([]*model.Project, error) {
	var out []*model.Project
	for _, id := range m.order {
		if project, ok := m.projects[id]; ok {
			out = append(out, project)
		}
	}
	return out, nil
}

func (m *memProjectRepo) ByCategory(key string) ([]*model.Project, error) {
	var out []*model.Project
	for _, id := range m.order {
		if project, ok := m.projects[id]; ok && project.Category == key {
			out = append(out, project)
		}
	}
	return out, nil
}

func (m *memProjectRepo) Update(project *model.Project) error {
	if _, ok := m.projects[project.ID]; !ok {
		return repository.ErrProjectNotFound
	}
	m.projects[project.ID] = project
	return nil
}

func (m *memProjectRepo) Delete(id string) error {
	if _, ok := m.projects[id]; !ok {
		return repository.ErrProjectNotFound
	}
	delete(m.projects, id)
	return nil
}

type memCategoryRepo struct {
	categories map[string]*model.Category
	order      []string
}

func (m *memCategoryRepo) Create(category *model.Category) error {
	for _, existing := range m.categories {
		if existing.Key == category.Key {
			return repository.ErrDuplicateKey
		}
	}
	m.categories[category.ID] = category
	m.order = append(m.order, category.ID)
	return nil
}

func (m *memCategoryRepo) ByID(id string) (*model.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	return category, nil
}

func (m *memCategoryRepo) ByKey(key string) (*model.Category, error) {
	for _, category := range m.categories {
		if category.Key == key {
			return category, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (m *memCategoryRepo) All() ([]*model.Category, error) {
	var out []*model.Category
	for _, id := range m.order {
		if category, ok := m.categories[id]; ok {
			out = append(out, category)
		}
	}
	return out, nil
}

func (m *memCategoryRepo) Update(category *model.Category) error {
	if _, ok := m.categories[category.ID]; !ok {
		return repository.ErrCategoryNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *memCategoryRepo) Delete(id string) error {
	if _, ok := m.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

type memServiceRepo struct {
	services map[string]*model.Service
	order    []string
}

func (m *memServiceRepo) Create(svc *model.Service) error {
	m.services[svc.ID] = svc
	m.order = append(m.order, svc.ID)
	return nil
}

func (m *memServiceRepo) ByID(id string) (*model.Service, error) {
	svc, ok := m.services[id]
	if !ok {
		return nil, repository.ErrServiceNotFound
	}
	return svc, nil
}

func (m *memServiceRepo) All() ([]*model.Service, error) {
	var out []*model.Service
	for _, id := range m.order {
		if svc, ok := m.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (m *memServiceRepo) Update(svc *model.Service) error {
	if _, ok := m.services[svc.ID]; !ok {
		return repository.ErrServiceNotFound
	}
	m.services[svc.ID] = svc
	return nil
}

func (m *memServiceRepo) Delete(id string) error {
	if _, ok := m.services[id]; !ok {
		return repository.ErrServiceNotFound
	}
	delete(m.services, id)
	return nil
}

type memDownloadRepo struct {
	downloads map[string]*model.Download
	order     []string
}

func (m *memDownloadRepo) Create(download *model.Download) error {
	m.downloads[download.ID] = download
	m.order = append(m.order, download.ID)
	return nil
}

func (m *memDownloadRepo) ByID(id string) (*model.Download, error) {
	download, ok := m.downloads[id]
	if !ok {
		return nil, repository.ErrDownloadNotFound
	}
	return download, nil
}

func (m *memDownloadRepo) All() ([]*model.Download, error) {
	var out []*model.Download
	for _, id := range m.order {
		if download, ok := m.downloads[id]; ok {
			out = append(out, download)
		}
	}
	return out, nil
}

func (m *memDownloadRepo) Delete(id string) error {
	if _, ok := m.downloads[id]; !ok {
		return repository.ErrDownloadNotFound
	}
	delete(m.downloads, id)
	return nil
}

type memOrderRepo struct {
	orders map[string]*model.Order
	order  []string
}

func (m *memOrderRepo) Create(order *model.Order) error {
	m.orders[order.ID] = order
	m.order = append(m.order, order.ID)
	return nil
}

func (m *memOrderRepo) ByID(id string) (*model.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return order, nil
}

func (m *memOrderRepo) All() ([]*model.Order, error) {
	var out []*model.Order
	for _, id := range m.order {
		if order, ok := m.orders[id]; ok {
			out = append(out, order)
		}
	}
	return out, nil
}

func (m *memOrderRepo) UpdateStatus(id, status string) error {
	order, ok := m.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func (m *memOrderRepo) Delete(id string) error {
	if _, ok := m.orders[id]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(m.orders, id)
	return nil
}

// newAdminTestServer wires real services over the in-memory repositories and
// registers the production route patterns. The session middleware is left off
// here; auth enforcement has its own tests.
func newAdminTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	renderer := markdown.NewRenderer()
	store := newMemStorage()

	portfolioService := service.NewPortfolioService(&memProjectRepo{projects: map[string]*model.Project{}}, store, renderer)
	categoryService := service.NewCategoryService(&memCategoryRepo{categories: map[string]*model.Category{}})
	expertiseService := service.NewExpertiseService(&memServiceRepo{services: map[string]*model.Service{}}, renderer)
	downloadService := service.NewDownloadService(&memDownloadRepo{downloads: map[string]*model.Download{}}, store)
	orderService := service.NewOrderService(&memOrderRepo{orders: map[string]*model.Order{}}, store, nil)

	project := NewProjectHandler(portfolioService)
	category := NewCategoryHandler(categoryService)
	expertise := NewExpertiseHandler(expertiseService)
	download := NewDownloadHandler(downloadService)
	order := NewOrderHandler(orderService, portfolioService)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/orders", order.Submit)

	mux.HandleFunc("GET /api/admin/stats", order.Stats)

	mux.HandleFunc("GET /api/admin/projects", project.List)
	mux.HandleFunc("POST /api/admin/projects", project.Create)
	mux.HandleFunc("PUT /api/admin/projects/{id}", project.Update)
	mux.HandleFunc("POST /api/admin/projects/{id}/images", project.AddImages)
	mux.HandleFunc("DELETE /api/admin/projects/{id}/images", project.RemoveImage)
	mux.HandleFunc("DELETE /api/admin/projects/{id}", project.Delete)

	mux.HandleFunc("GET /api/admin/categories", category.List)
	mux.HandleFunc("POST /api/admin/categories", category.Create)
	mux.HandleFunc("PUT /api/admin/categories/{id}", category.Update)
	mux.HandleFunc("DELETE /api/admin/categories/{id}", category.Delete)

	mux.HandleFunc("GET /api/admin/services", expertise.List)
	mux.HandleFunc("POST /api/admin/services", expertise.Create)
	mux.HandleFunc("PUT /api/admin/services/{id}", expertise.Update)
	mux.HandleFunc("DELETE /api/admin/services/{id}", expertise.Delete)

	mux.HandleFunc("GET /api/admin/downloads", download.List)
	mux.HandleFunc("POST /api/admin/downloads", download.Create)
	mux.HandleFunc("DELETE /api/admin/downloads/{id}", download.Delete)

	mux.HandleFunc("GET /api/admin/orders", order.List)
	mux.HandleFunc("PATCH /api/admin/orders/{id}/status", order.UpdateStatus)
	mux.HandleFunc("DELETE /api/admin/orders/{id}", order.Delete)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

// formFile is one file part of a multipart request built by multipartBody.
type formFile struct {
	field   string
	name    string
	content string
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	for _, file := range files {
		fw, err := mw.CreateFormFile(file.field, file.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func doRequest(t *testing.T, method, url, contentType string, body io.Reader) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func fetchList(t *testing.T, url string) string {
	t.Helper()

	resp := doRequest(t, http.MethodGet, url, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return readBody(t, resp)
}

// assertFreshList asserts that a mutation's response body matches a
// subsequent GET of the same list, i.e. the handler refetched after writing.
func assertFreshList(t *testing.T, listURL, mutationBody string) {
	t.Helper()
	assert.JSONEq(t, fetchList(t, listURL), mutationBody)
}
