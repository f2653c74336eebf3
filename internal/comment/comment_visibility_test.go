package comment_test

import (
	"testing"

	"go-workboard/internal/comment"
	"go-workboard/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func TestVisibleTo(t *testing.T) {
	director := domain.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleDirector}
	head := domain.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleProjectHead}
	employee := domain.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleEmployee}

	directorsOnly := comment.Comment{
		ID:                   uuid.New(),
		AuthorID:             uuid.MustParse(director.EmployeeID),
		VisibleToEmployee:    false,
		VisibleToProjectHead: false,
	}
	headsOnly := comment.Comment{
		ID:                   uuid.New(),
		AuthorID:             uuid.MustParse(director.EmployeeID),
		VisibleToEmployee:    false,
		VisibleToProjectHead: true,
	}
	ownPrivate := comment.Comment{
		ID:                   uuid.New(),
		AuthorID:             uuid.MustParse(employee.EmployeeID),
		VisibleToEmployee:    false,
		VisibleToProjectHead: false,
	}

	assert.True(t, comment.VisibleTo(directorsOnly, director))
	assert.False(t, comment.VisibleTo(directorsOnly, head))
	assert.False(t, comment.VisibleTo(directorsOnly, employee))

	assert.True(t, comment.VisibleTo(headsOnly, head))
	assert.False(t, comment.VisibleTo(headsOnly, employee))

	assert.True(t, comment.VisibleTo(ownPrivate, employee))
	assert.False(t, comment.VisibleTo(ownPrivate, domain.Actor{EmployeeID: uuid.NewString(), Role: "Guest"}))

	filtered := comment.Filter([]comment.Comment{directorsOnly, headsOnly, ownPrivate}, head)
	assert.Len(t, filtered, 1)
	assert.Equal(t, headsOnly.ID, filtered[0].ID)
}

func TestNew(t *testing.T) {
	ownerID := uuid.New()

	t.Run("director chooses flags", func(t *testing.T) {
		author := domain.Actor{EmployeeID: uuid.NewString(), Name: "Dina", Role: domain.RoleDirector}
		c, err := comment.New(comment.OwnerTask, ownerID, author, comment.CreateCommentRequest{
			Text:                 "  budget review  ",
			VisibleToEmployee:    boolPtr(false),
			VisibleToProjectHead: boolPtr(true),
		})
		assert.NoError(t, err)
		assert.Equal(t, "budget review", c.Text)
		assert.False(t, c.VisibleToEmployee)
		assert.True(t, c.VisibleToProjectHead)
		assert.Equal(t, "Dina", c.AuthorName)
		assert.Equal(t, comment.OwnerTask, c.OwnerType)
	})

	t.Run("employee comment cannot be hidden", func(t *testing.T) {
		author := domain.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleEmployee}
		c, err := comment.New(comment.OwnerProject, ownerID, author, comment.CreateCommentRequest{
			Text:                 "blocked on access",
			VisibleToEmployee:    boolPtr(false),
			VisibleToProjectHead: boolPtr(false),
		})
		assert.NoError(t, err)
		assert.True(t, c.VisibleToEmployee)
		assert.True(t, c.VisibleToProjectHead)
	})

	t.Run("project head always sees own level", func(t *testing.T) {
		author := domain.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleProjectHead}
		c, err := comment.New(comment.OwnerProject, ownerID, author, comment.CreateCommentRequest{
			Text:                 "internal",
			VisibleToEmployee:    boolPtr(false),
			VisibleToProjectHead: boolPtr(false),
		})
		assert.NoError(t, err)
		assert.False(t, c.VisibleToEmployee)
		assert.True(t, c.VisibleToProjectHead)
	})

	t.Run("blank text", func(t *testing.T) {
		author := domain.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleEmployee}
		_, err := comment.New(comment.OwnerProject, ownerID, author, comment.CreateCommentRequest{Text: "   "})
		assert.ErrorIs(t, err, comment.ErrEmptyText)
	})

	t.Run("invalid author", func(t *testing.T) {
		_, err := comment.New(comment.OwnerProject, ownerID, domain.Actor{EmployeeID: "x"}, comment.CreateCommentRequest{Text: "hi"})
		assert.ErrorIs(t, err, comment.ErrInvalidAuthor)
	})
}
