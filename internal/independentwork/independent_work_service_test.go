package independentwork_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"strings"
	"testing"

	"go-workboard/internal/comment"
	"go-workboard/internal/directory"
	"go-workboard/internal/domain"
	"go-workboard/internal/independentwork"
	independentworkerrors "go-workboard/internal/independentwork/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	CreateFn                func(ctx context.Context, e *independentwork.Entry) error
	FindAllVisibleFn        func(ctx context.Context, actor domain.Actor) ([]independentwork.Entry, error)
	FindVisibleByEmployeeFn func(ctx context.Context, actor domain.Actor, employeeID string) ([]independentwork.Entry, error)
	FindVisibleByIDFn       func(ctx context.Context, actor domain.Actor, id string) (*independentwork.Entry, error)
	UpdateFn                func(ctx context.Context, e *independentwork.Entry) error
	ReplaceAttachmentsFn    func(ctx context.Context, e *independentwork.Entry) error
	DeleteFn                func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) independentwork.Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, e *independentwork.Entry) error {
	return f.CreateFn(ctx, e)
}
func (f *fakeRepo) FindAllVisible(ctx context.Context, actor domain.Actor) ([]independentwork.Entry, error) {
	return f.FindAllVisibleFn(ctx, actor)
}
func (f *fakeRepo) FindVisibleByEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]independentwork.Entry, error) {
	return f.FindVisibleByEmployeeFn(ctx, actor, employeeID)
}
func (f *fakeRepo) FindVisibleByID(ctx context.Context, actor domain.Actor, id string) (*independentwork.Entry, error) {
	return f.FindVisibleByIDFn(ctx, actor, id)
}
func (f *fakeRepo) Update(ctx context.Context, e *independentwork.Entry) error {
	return f.UpdateFn(ctx, e)
}
func (f *fakeRepo) ReplaceAttachments(ctx context.Context, e *independentwork.Entry) error {
	return f.ReplaceAttachmentsFn(ctx, e)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type fakeComments struct {
	byOwner map[string][]comment.Comment
	created []*comment.Comment
	deleted []string
}

func (f *fakeComments) WithTx(tx *sql.Tx) comment.Repository { return f }
func (f *fakeComments) Create(ctx context.Context, c *comment.Comment) error {
	f.created = append(f.created, c)
	return nil
}
func (f *fakeComments) FindByOwner(ctx context.Context, ownerType, ownerID string) ([]comment.Comment, error) {
	return f.byOwner[ownerID], nil
}
func (f *fakeComments) FindByOwners(ctx context.Context, ownerType string, ids []string) (map[string][]comment.Comment, error) {
	out := make(map[string][]comment.Comment)
	for _, id := range ids {
		out[id] = f.byOwner[id]
	}
	return out, nil
}
func (f *fakeComments) DeleteByOwner(ctx context.Context, ownerType, ownerID string) error {
	f.deleted = append(f.deleted, ownerID)
	return nil
}

type fakeDirectory map[string]directory.Person

func (d fakeDirectory) Lookup(ctx context.Context, ids []string) (map[string]directory.Person, error) {
	out := make(map[string]directory.Person)
	for _, id := range ids {
		if p, ok := d[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

var (
	workerID  = uuid.New()
	worker    = domain.Actor{EmployeeID: workerID.String(), Name: "Eka", Role: domain.RoleEmployee}
	colleague = domain.Actor{EmployeeID: uuid.NewString(), Name: "Bayu", Role: domain.RoleEmployee}
	head      = domain.Actor{EmployeeID: uuid.NewString(), Name: "Hadi", Role: domain.RoleProjectHead}
	director  = domain.Actor{EmployeeID: uuid.NewString(), Name: "Dewi", Role: domain.RoleDirector}
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	repo     *fakeRepo
	comments *fakeComments
	service  independentwork.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeRepo{}
	comments := &fakeComments{byOwner: map[string][]comment.Comment{}}
	dir := fakeDirectory{
		workerID.String():    {ID: workerID.String(), Name: "Eka"},
		colleague.EmployeeID: {ID: colleague.EmployeeID, Name: "Bayu"},
	}

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		repo:     repo,
		comments: comments,
		service:  independentwork.NewService(db, repo, comments, dir),
	}
}

func createRequest() independentwork.CreateEntryRequest {
	return independentwork.CreateEntryRequest{
		Date:        "2026-02-03",
		Description: "Site survey",
		Category:    "Field",
		Hours:       3.5,
	}
}

func existingEntry() *independentwork.Entry {
	return &independentwork.Entry{
		ID:           uuid.New(),
		EmployeeID:   workerID,
		EmployeeName: "Eka",
		Description:  "Site survey",
		Category:     "Field",
		Hours:        2,
	}
}

func TestIndependentWorkService_Create(t *testing.T) {
	t.Run("employee logs own work with a data url attachment", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var saved *independentwork.Entry
		deps.repo.CreateFn = func(ctx context.Context, e *independentwork.Entry) error {
			saved = e
			return nil
		}

		req := createRequest()
		req.Attachments = []independentwork.AttachmentRequest{
			{FileName: "photo.png", Data: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))},
		}

		resp, err := deps.service.Create(context.Background(), worker, req)

		assert.NoError(t, err)
		assert.Equal(t, workerID, saved.EmployeeID)
		assert.Equal(t, "Eka", resp.EmployeeName)
		assert.Equal(t, "2026-02-03", resp.Date)
		assert.Len(t, saved.Attachments, 1)
		assert.Equal(t, "image/png", saved.Attachments[0].ContentType)
		assert.Equal(t, []byte("png-bytes"), saved.Attachments[0].Data)
		assert.Equal(t, int64(9), resp.Attachments[0].Size)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png-bytes")), resp.Attachments[0].Data)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("director logs for another employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.CreateFn = func(ctx context.Context, e *independentwork.Entry) error { return nil }

		req := createRequest()
		req.EmployeeID = colleague.EmployeeID
		resp, err := deps.service.Create(context.Background(), director, req)

		assert.NoError(t, err)
		assert.Equal(t, colleague.EmployeeID, resp.EmployeeID)
		assert.Equal(t, "Bayu", resp.EmployeeName)
	})

	t.Run("employee cannot log for someone else", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := createRequest()
		req.EmployeeID = colleague.EmployeeID
		_, err := deps.service.Create(context.Background(), worker, req)
		assert.ErrorIs(t, err, independentworkerrors.ErrCreateForOthers)
	})

	t.Run("hours bounds", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		for _, h := range []float64{0, -1, 24.5} {
			req := createRequest()
			req.Hours = h
			_, err := deps.service.Create(context.Background(), worker, req)
			assert.ErrorIs(t, err, independentworkerrors.ErrInvalidHours, "hours %v", h)
		}
	})

	t.Run("too many attachments", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := createRequest()
		for i := 0; i < independentwork.MaxAttachments+1; i++ {
			req.Attachments = append(req.Attachments, independentwork.AttachmentRequest{FileName: "a.txt", Data: "YQ=="})
		}
		_, err := deps.service.Create(context.Background(), worker, req)
		assert.ErrorIs(t, err, independentworkerrors.ErrTooManyAttachments)
	})

	t.Run("attachment over size limit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		big := bytes.Repeat([]byte{'x'}, independentwork.MaxAttachmentBytes+1)
		req := createRequest()
		req.Attachments = []independentwork.AttachmentRequest{{FileName: "big.bin", Data: base64.StdEncoding.EncodeToString(big)}}
		_, err := deps.service.Create(context.Background(), worker, req)
		assert.ErrorIs(t, err, independentworkerrors.ErrAttachmentTooLarge)
	})

	t.Run("oversized attachment rejected before decoding", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		junk := strings.Repeat("%", base64.StdEncoding.EncodedLen(independentwork.MaxAttachmentBytes+1))
		req := createRequest()
		req.Attachments = []independentwork.AttachmentRequest{{FileName: "big.bin", Data: junk}}
		_, err := deps.service.Create(context.Background(), worker, req)
		assert.ErrorIs(t, err, independentworkerrors.ErrAttachmentTooLarge)
	})

	t.Run("empty attachment payload", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := createRequest()
		req.Attachments = []independentwork.AttachmentRequest{{FileName: "blank.png", Data: "data:image/png;base64,"}}
		_, err := deps.service.Create(context.Background(), worker, req)
		assert.ErrorIs(t, err, independentworkerrors.ErrInvalidAttachment)
	})

	t.Run("attachment not base64", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := createRequest()
		req.Attachments = []independentwork.AttachmentRequest{{FileName: "x", Data: "%%%"}}
		_, err := deps.service.Create(context.Background(), worker, req)
		assert.ErrorIs(t, err, independentworkerrors.ErrInvalidAttachment)
	})
}

func TestIndependentWorkService_Read(t *testing.T) {
	t.Run("comments filtered for viewer", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		e := existingEntry()
		deps.comments.byOwner[e.ID.String()] = []comment.Comment{
			{ID: uuid.New(), Text: "visible", VisibleToEmployee: true},
			{ID: uuid.New(), Text: "heads only", VisibleToProjectHead: true},
		}
		deps.repo.FindVisibleByEmployeeFn = func(ctx context.Context, actor domain.Actor, employeeID string) ([]independentwork.Entry, error) {
			assert.Equal(t, workerID.String(), employeeID)
			return []independentwork.Entry{*e}, nil
		}

		resp, err := deps.service.GetByEmployee(context.Background(), worker, workerID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Len(t, resp[0].Comments, 1)
		assert.Equal(t, "visible", resp[0].Comments[0].Text)
	})

	t.Run("invalid employee id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByEmployee(context.Background(), head, "abc")
		assert.ErrorIs(t, err, independentworkerrors.ErrInvalidEmployeeID)
	})

	t.Run("hidden entry reads as not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.FindVisibleByIDFn = func(ctx context.Context, actor domain.Actor, id string) (*independentwork.Entry, error) {
			return nil, gorm.ErrRecordNotFound
		}
		_, err := deps.service.GetByID(context.Background(), colleague, uuid.NewString())
		assert.ErrorIs(t, err, independentworkerrors.ErrEntryNotFound)
	})
}

func TestIndependentWorkService_Update(t *testing.T) {
	updateReq := independentwork.UpdateEntryRequest{
		Date:        "2026-02-04",
		Description: "Survey write-up",
		Category:    "Office",
		Hours:       8,
	}

	t.Run("project head can read but not change", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		e := existingEntry()
		deps.repo.FindVisibleByIDFn = func(ctx context.Context, actor domain.Actor, id string) (*independentwork.Entry, error) { return e, nil }

		_, err := deps.service.Update(context.Background(), head, e.ID.String(), updateReq)
		assert.ErrorIs(t, err, independentworkerrors.ErrNotAuthor)
	})

	t.Run("author keeps attachments when none sent", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		e := existingEntry()
		e.Attachments = []independentwork.Attachment{{ID: uuid.New(), FileName: "keep.txt", Data: []byte("k")}}
		deps.repo.FindVisibleByIDFn = func(ctx context.Context, actor domain.Actor, id string) (*independentwork.Entry, error) { return e, nil }
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.UpdateFn = func(ctx context.Context, updated *independentwork.Entry) error { return nil }
		deps.repo.ReplaceAttachmentsFn = func(ctx context.Context, updated *independentwork.Entry) error {
			t.Fatal("attachments must not be replaced")
			return nil
		}

		resp, err := deps.service.Update(context.Background(), worker, e.ID.String(), updateReq)

		assert.NoError(t, err)
		assert.Equal(t, "Office", resp.Category)
		assert.Equal(t, float64(8), resp.Hours)
		assert.Len(t, resp.Attachments, 1)
	})

	t.Run("empty list clears attachments", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		e := existingEntry()
		e.Attachments = []independentwork.Attachment{{ID: uuid.New(), FileName: "old.txt"}}
		deps.repo.FindVisibleByIDFn = func(ctx context.Context, actor domain.Actor, id string) (*independentwork.Entry, error) { return e, nil }
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.UpdateFn = func(ctx context.Context, updated *independentwork.Entry) error { return nil }
		cleared := false
		deps.repo.ReplaceAttachmentsFn = func(ctx context.Context, updated *independentwork.Entry) error {
			cleared = len(updated.Attachments) == 0
			return nil
		}

		req := updateReq
		req.Attachments = &[]independentwork.AttachmentRequest{}
		_, err := deps.service.Update(context.Background(), director, e.ID.String(), req)

		assert.NoError(t, err)
		assert.True(t, cleared)
	})
}

func TestIndependentWorkService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	e := existingEntry()
	deps.repo.FindVisibleByIDFn = func(ctx context.Context, actor domain.Actor, id string) (*independentwork.Entry, error) { return e, nil }
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.repo.DeleteFn = func(ctx context.Context, id string) error { return nil }

	err := deps.service.Delete(context.Background(), worker, e.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, []string{e.ID.String()}, deps.comments.deleted)
}
