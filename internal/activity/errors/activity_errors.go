package activityerrors

import (
	"net/http"

	"go-workboard/internal/shared/apperror"
)

var (
	ErrAlreadyRecorded = apperror.New(
		apperror.CodeConflict,
		"Activity already recorded for this event",
		http.StatusConflict,
	)
	ErrInvalidEvent = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid task event",
		http.StatusBadRequest,
	)
)
