package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-workboard/internal/employee"
	employeeerrors "go-workboard/internal/employee/errors"
	"go-workboard/internal/events"
	"go-workboard/internal/messaging/kafka"
	kafkaMock "go-workboard/internal/messaging/kafka/mock"
	"go-workboard/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	CreateFn         func(ctx context.Context, empl *employee.Employee) error
	FindAllFn        func(ctx context.Context) ([]employee.Employee, error)
	FindOptionsFn    func(ctx context.Context) ([]employee.Employee, error)
	FindByIDFn       func(ctx context.Context, id string) (*employee.Employee, error)
	FindByUsernameFn func(ctx context.Context, username string) (*employee.Employee, error)
	UpdateFn         func(ctx context.Context, empl *employee.Employee) error
	DeleteFn         func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, empl *employee.Employee) error {
	return f.CreateFn(ctx, empl)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeRepo) FindOptions(ctx context.Context) ([]employee.Employee, error) {
	return f.FindOptionsFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeRepo) FindByUsername(ctx context.Context, username string) (*employee.Employee, error) {
	return f.FindByUsernameFn(ctx, username)
}
func (f *fakeRepo) Update(ctx context.Context, empl *employee.Employee) error {
	return f.UpdateFn(ctx, empl)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *fakeRepo
	outbox    *kafkaMock.MockOutboxRepository
	redisMock redismock.ClientMock
	service   employee.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()
	repo := &fakeRepo{}
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      repo,
		outbox:    outbox,
		redisMock: redisMock,
		service:   employee.NewServiceWithOutbox(db, repo, outbox, rdb),
	}
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:        "Rina Wijaya",
		Email:       "Rina@Example.com",
		Phone:       "0812000111",
		Position:    "Engineer",
		Department:  "Platform",
		JoiningDate: "2025-02-01",
		Username:    "rina",
		Password:    "s3cret-pass",
		Role:        "Employee",
		Status:      "Active",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("success queues outbox event and invalidates options", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		ctx := contextutil.WithRequestID(context.Background(), "REQ-42")
		req := validCreateRequest()

		expectTx(deps.sqlMock, true)

		var saved *employee.Employee
		deps.repo.CreateFn = func(ctx context.Context, empl *employee.Employee) error {
			saved = empl
			return nil
		}

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, "REQ-42", event.RequestID)
				assert.Equal(t, events.EventEmployeeCreated, event.EventType)
				assert.Equal(t, events.EmployeeLifecycleTopic, event.Topic)
				assert.Equal(t, kafka.OutboxStatusPending, event.Status)

				var payload events.EmployeeCreatedEvent
				assert.NoError(t, json.Unmarshal(event.Payload, &payload))
				assert.Equal(t, event.AggregateID, payload.EmployeeID)
				assert.Equal(t, "Employee", payload.Role)
				return nil
			})

		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, saved.ID.String(), resp.ID)
		assert.Equal(t, "rina@example.com", resp.Email)
		assert.Equal(t, "2025-02-01", resp.JoiningDate)
		assert.Equal(t, "green", resp.StatusColor)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte(req.Password)))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("invalid role", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.Role = "Manager"

		_, err := deps.service.Create(context.Background(), req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidRole)
	})

	t.Run("invalid status", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.Status = "Retired"

		_, err := deps.service.Create(context.Background(), req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatus)
	})

	t.Run("invalid joining date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.JoiningDate = "01/02/2025"

		_, err := deps.service.Create(context.Background(), req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(deps.sqlMock, false)
		deps.repo.CreateFn = func(ctx context.Context, empl *employee.Employee) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_email"}
		}

		_, err := deps.service.Create(context.Background(), validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate username", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(deps.sqlMock, false)
		deps.repo.CreateFn = func(ctx context.Context, empl *employee.Employee) error {
			return errors.New(`ERROR: duplicate key value violates unique constraint "uq_employees_username"`)
		}

		_, err := deps.service.Create(context.Background(), validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrUsernameAlreadyExists)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := `[{"id":"e-1","name":"Budi","role":"Project Head","position":"Lead"}]`
		deps.redisMock.ExpectGet(employee.EmployeeOptionsKey).SetVal(cached)

		resp, err := deps.service.GetOptions(context.Background())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Budi", resp[0].Name)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.FindOptionsFn = func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{{ID: id, Name: "Sari", Role: "Employee", Position: "QA"}}, nil
		}

		expected := []employee.EmployeeOptionResponse{{ID: id.String(), Name: "Sari", Role: "Employee", Position: "QA"}}
		data, _ := json.Marshal(expected)

		deps.redisMock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.redisMock.ExpectSet(employee.EmployeeOptionsKey, data, time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("blank password keeps hash", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &employee.Employee{ID: id, Name: "Old", PasswordHash: "stored-hash", Role: "Employee", Status: "Active"}

		expectTx(deps.sqlMock, true)
		deps.repo.FindByIDFn = func(ctx context.Context, got string) (*employee.Employee, error) {
			assert.Equal(t, id.String(), got)
			return existing, nil
		}
		deps.repo.UpdateFn = func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, "stored-hash", empl.PasswordHash)
			assert.Equal(t, "On Leave", empl.Status)
			return nil
		}
		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		req := employee.UpdateEmployeeRequest{
			Name:        "New Name",
			Email:       "new@example.com",
			Phone:       "0812",
			Position:    "Engineer",
			Department:  "Platform",
			JoiningDate: "2024-06-10",
			Username:    "newname",
			Role:        "Project Head",
			Status:      "On Leave",
		}
		resp, err := deps.service.Update(context.Background(), id.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "New Name", resp.Name)
		assert.Equal(t, "Project Head", resp.Role)
		assert.Equal(t, "yellow", resp.StatusColor)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(deps.sqlMock, false)
		deps.repo.FindByIDFn = func(ctx context.Context, got string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		req := employee.UpdateEmployeeRequest{JoiningDate: "2024-06-10", Role: "Employee", Status: "Active"}
		_, err := deps.service.Update(context.Background(), id.String(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(context.Background(), "abc", employee.UpdateEmployeeRequest{})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	id := uuid.NewString()
	actorID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(deps.sqlMock, true)
		deps.repo.DeleteFn = func(ctx context.Context, got string) error {
			assert.Equal(t, id, got)
			return nil
		}
		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		assert.NoError(t, deps.service.Delete(context.Background(), actorID, id))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("cannot delete self", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		err := deps.service.Delete(context.Background(), id, id)
		assert.ErrorIs(t, err, employeeerrors.ErrCannotDeleteSelf)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(deps.sqlMock, false)
		deps.repo.DeleteFn = func(ctx context.Context, got string) error {
			return gorm.ErrRecordNotFound
		}

		err := deps.service.Delete(context.Background(), actorID, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
