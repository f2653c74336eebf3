package comment

import (
	"net/http"

	"go-workboard/internal/shared/apperror"
)

var (
	ErrEmptyText = apperror.New(
		apperror.CodeInvalidInput,
		"Comment text is required",
		http.StatusBadRequest,
	)
	ErrInvalidAuthor = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid comment author",
		http.StatusBadRequest,
	)
)
