package employee_test

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-workboard/internal/employee"
	employeeerrors "go-workboard/internal/employee/errors"
	"go-workboard/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn     func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetOptionsFn func(ctx context.Context) ([]employee.EmployeeOptionResponse, error)
	GetByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn     func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, actorID, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeOptionResponse, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, actorID, id string) error {
	return f.DeleteFn(ctx, actorID, id)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func sampleEmployees() []employee.EmployeeResponse {
	return []employee.EmployeeResponse{
		{ID: "1", Name: "Citra", Email: "citra@example.com", Username: "citra", Department: "Sales", Position: "Rep", Phone: "01", Status: "Active", Role: "Employee", JoiningDate: "2024-01-02"},
		{ID: "2", Name: "Agus", Email: "agus@example.com", Username: "agus", Department: "Ops", Position: "Lead", Phone: "02", Status: "On Leave", Role: "Project Head", JoiningDate: "2023-05-06"},
		{ID: "3", Name: "Bayu", Email: "bayu@corp.io", Username: "bayu", Department: "Ops", Position: "Director", Phone: "03", Status: "Active", Role: "Director", JoiningDate: "2020-09-10"},
	}
}

const validBody = `{"name":"John Doe","email":"john@example.com","phone":"0812","position":"Engineer","department":"Platform","joiningDate":"2026-01-01","username":"john","password":"secret123","role":"Employee","status":"Active"}`

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "John Doe", req.Name)
				assert.Equal(t, "2026-01-01", req.JoiningDate)
				return employee.EmployeeResponse{ID: uuid.NewString(), Name: req.Name}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(validBody))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "John Doe")
	})

	t.Run("missing required field", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := strings.Replace(validBody, `"phone":"0812",`, "", 1)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Phone is required")
	})

	t.Run("bad joining date format", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := strings.Replace(validBody, `"2026-01-01"`, `"01-01-2026"`, 1)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Joining Date is invalid")
	})

	t.Run("conflict from service", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrUsernameAlreadyExists
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(validBody))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Username is already taken")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return sampleEmployees(), nil
		},
	}
	h := employee.NewHandler(svc)

	t.Run("search sort and paginate", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employees?q=example.com&sort_by=name&sort_dir=desc&page=1&page_size=1", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Citra")
		assert.NotContains(t, body, "Agus")
		assert.NotContains(t, body, "Bayu")
		assert.Contains(t, body, `"total":2`)
	})

	t.Run("sort by joining date", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employees?sort_by=joining_date", nil)

		h.GetAll(c)

		body := w.Body.String()
		assert.Less(t, strings.Index(body, "Bayu"), strings.Index(body, "Agus"))
		assert.Less(t, strings.Index(body, "Agus"), strings.Index(body, "Citra"))
	})
}

func TestEmployeeHandler_Export(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return sampleEmployees(), nil
		},
	}
	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/employees/export", nil)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 4)
	assert.Equal(t, []string{"Name", "Position", "Department", "Email", "Phone", "Status", "Username", "Role", "Joining Date"}, records[0])
	assert.Equal(t, []string{"Agus", "Lead", "Ops", "agus@example.com", "02", "On Leave", "agus", "Project Head", "2023-05-06"}, records[1])
}

func TestWriteCSV_QuotesFields(t *testing.T) {
	var sb strings.Builder
	err := employee.WriteCSV(&sb, []employee.EmployeeResponse{{Name: "Doe, Jane", Position: `Lead "Ops"`}})

	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], `"Doe, Jane","Lead ""Ops"""`))

	t.Run("formula cells are neutralized", func(t *testing.T) {
		var out strings.Builder
		err := employee.WriteCSV(&out, []employee.EmployeeResponse{{
			Name:     "=HYPERLINK(\"http://x\")",
			Email:    "@SUM(A1)",
			Phone:    "+62 812",
			Username: "-1+1",
			Role:     "Employee",
		}})

		assert.NoError(t, err)
		row := strings.Split(strings.TrimSpace(out.String()), "\n")[1]
		assert.Equal(t, `"'=HYPERLINK(""http://x"")",,,'@SUM(A1),'+62 812,,'-1+1,Employee,`, row)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	actorID := uuid.NewString()
	targetID := uuid.NewString()

	t.Run("passes actor to service", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, gotActor, id string) error {
				assert.Equal(t, actorID, gotActor)
				assert.Equal(t, targetID, id)
				return nil
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/employees/"+targetID, nil)
		c.Params = gin.Params{{Key: "id", Value: targetID}}
		c.Set("employee_id", actorID)
		c.Set("role", "Director")

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, gotActor, id string) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/employees/"+targetID, nil)
		c.Params = gin.Params{{Key: "id", Value: targetID}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
