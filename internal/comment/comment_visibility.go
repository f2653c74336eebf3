package comment

import (
	"strings"
	"time"

	"go-workboard/internal/domain"

	"github.com/google/uuid"
)

// VisibleTo reports whether viewer may read c. Authors always see their own comments.
func VisibleTo(c Comment, viewer domain.Actor) bool {
	if viewer.IsDirector() || c.AuthorID.String() == viewer.EmployeeID {
		return true
	}
	switch viewer.Role {
	case domain.RoleProjectHead:
		return c.VisibleToProjectHead
	case domain.RoleEmployee:
		return c.VisibleToEmployee
	default:
		return false
	}
}

func Filter(comments []Comment, viewer domain.Actor) []Comment {
	out := make([]Comment, 0, len(comments))
	for _, c := range comments {
		if VisibleTo(c, viewer) {
			out = append(out, c)
		}
	}
	return out
}

// New builds a comment for ownerType/ownerID, applying the flag rules of the author's role:
// Directors choose freely, a Project Head always sees project head comments, and
// employee comments are always visible to employees and project heads.
func New(ownerType string, ownerID uuid.UUID, author domain.Actor, req CreateCommentRequest) (*Comment, error) {
	authorID, err := uuid.Parse(author.EmployeeID)
	if err != nil {
		return nil, ErrInvalidAuthor
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	visibleToEmployee := true
	if req.VisibleToEmployee != nil {
		visibleToEmployee = *req.VisibleToEmployee
	}
	visibleToProjectHead := true
	if req.VisibleToProjectHead != nil {
		visibleToProjectHead = *req.VisibleToProjectHead
	}

	switch author.Role {
	case domain.RoleProjectHead:
		visibleToProjectHead = true
	case domain.RoleEmployee:
		visibleToEmployee = true
		visibleToProjectHead = true
	}

	return &Comment{
		ID:                   uuid.New(),
		OwnerType:            ownerType,
		OwnerID:              ownerID,
		AuthorID:             authorID,
		AuthorName:           author.Name,
		AuthorRole:           author.Role,
		Text:                 text,
		VisibleToEmployee:    visibleToEmployee,
		VisibleToProjectHead: visibleToProjectHead,
		CreatedAt:            time.Now().UTC(),
	}, nil
}

func ToResponse(c Comment) CommentResponse {
	return CommentResponse{
		ID:                   c.ID.String(),
		AuthorID:             c.AuthorID.String(),
		AuthorName:           c.AuthorName,
		AuthorRole:           c.AuthorRole,
		Text:                 c.Text,
		VisibleToEmployee:    c.VisibleToEmployee,
		VisibleToProjectHead: c.VisibleToProjectHead,
		CreatedAt:            c.CreatedAt.Format(time.RFC3339),
	}
}

// ToVisibleResponses filters for viewer and keeps creation order.
func ToVisibleResponses(comments []Comment, viewer domain.Actor) []CommentResponse {
	visible := Filter(comments, viewer)
	out := make([]CommentResponse, len(visible))
	for i, c := range visible {
		out[i] = ToResponse(c)
	}
	return out
}
