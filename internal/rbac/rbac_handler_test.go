package rbac_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-workboard/internal/domain"
	"go-workboard/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	enforceFn func(req domain.EnforceRequest) (bool, error)
	permsFn   func(role string) ([]string, error)
}

func (f *fakeService) LoadPolicy() error { return nil }

func (f *fakeService) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.enforceFn(req)
}

func (f *fakeService) PermissionsForRole(role string) ([]string, error) {
	return f.permsFn(role)
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allowed", func(t *testing.T) {
		svc := &fakeService{enforceFn: func(req domain.EnforceRequest) (bool, error) {
			assert.Equal(t, "Project Head", req.Role)
			return req.Resource == "task" && req.Action == "create", nil
		}}
		router := gin.New()
		router.POST("/rbac/enforce", rbac.NewHandler(svc).Enforce)

		body, _ := json.Marshal(domain.EnforceRequest{Role: " Project Head ", Resource: "task", Action: "create"})
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("missing field", func(t *testing.T) {
		router := gin.New()
		router.POST("/rbac/enforce", rbac.NewHandler(&fakeService{}).Enforce)

		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"role":"Director"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeService{enforceFn: func(req domain.EnforceRequest) (bool, error) {
			return false, errors.New("policy not loaded")
		}}
		router := gin.New()
		router.POST("/rbac/enforce", rbac.NewHandler(svc).Enforce)

		body, _ := json.Marshal(domain.EnforceRequest{Role: "Director", Resource: "task", Action: "read"})
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "policy not loaded")
	})
}

func TestHandler_Permissions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{permsFn: func(role string) ([]string, error) {
		assert.Equal(t, "Employee", role)
		return []string{"task:read"}, nil
	}}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil)
	c.Set("role", "Employee")

	rbac.NewHandler(svc).Permissions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "task:read")
}
