package independentworkerrors

import (
	"net/http"

	"go-workboard/internal/shared/apperror"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Independent work entry not found",
		http.StatusNotFound,
	)
	ErrInvalidEntryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid independent work ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Employee does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must use YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidHours = apperror.New(
		apperror.CodeInvalidInput,
		"Hours must be greater than 0 and at most 24",
		http.StatusBadRequest,
	)
	ErrTooManyAttachments = apperror.New(
		apperror.CodeInvalidInput,
		"At most 5 attachments are allowed per entry",
		http.StatusBadRequest,
	)
	ErrAttachmentTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Attachments must be 5 MiB or smaller",
		http.StatusRequestEntityTooLarge,
	)
	ErrInvalidAttachment = apperror.New(
		apperror.CodeInvalidInput,
		"Attachment data must be base64 encoded",
		http.StatusBadRequest,
	)
	ErrNotAuthor = apperror.New(
		apperror.CodeForbidden,
		"Only the author or a Director can change this entry",
		http.StatusForbidden,
	)
	ErrCreateForOthers = apperror.New(
		apperror.CodeForbidden,
		"Only a Director can log work for another employee",
		http.StatusForbidden,
	)
)
