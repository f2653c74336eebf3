package projecterrors

import (
	"net/http"

	"go-workboard/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	ErrProjectNumberExists = apperror.New(
		apperror.CodeConflict,
		"Project number already exists",
		http.StatusConflict,
	)
	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of Current, Upcoming, On Hold, Completed",
		http.StatusBadRequest,
	)
	ErrAssigneeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Assigned employee does not exist",
		http.StatusBadRequest,
	)
	ErrNotProjectManager = apperror.New(
		apperror.CodeForbidden,
		"Only a Director or the assigned Project Head can change this project",
		http.StatusForbidden,
	)
)
