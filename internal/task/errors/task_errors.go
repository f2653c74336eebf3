package taskerrors

import (
	"net/http"

	"go-workboard/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found",
		http.StatusNotFound,
	)
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid task ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of Pending, In Progress, Completed, Overdue",
		http.StatusBadRequest,
	)
	ErrInvalidPriority = apperror.New(
		apperror.CodeInvalidInput,
		"Priority must be one of Low, Medium, High, Urgent",
		http.StatusBadRequest,
	)
	ErrInvalidDueDate = apperror.New(
		apperror.CodeInvalidInput,
		"Due date must use YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAssigneeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"One or more assigned employees do not exist",
		http.StatusBadRequest,
	)
	ErrProjectHeadNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Project head does not exist",
		http.StatusBadRequest,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Project does not exist",
		http.StatusBadRequest,
	)
	ErrNotTaskManager = apperror.New(
		apperror.CodeForbidden,
		"Only a Director, the assigner or the project head can change this task",
		http.StatusForbidden,
	)
	ErrTaskLocked = apperror.New(
		apperror.CodeForbidden,
		"Task is locked",
		http.StatusForbidden,
	)
	ErrNotAssignee = apperror.New(
		apperror.CodeForbidden,
		"Only an assignee can make this request",
		http.StatusForbidden,
	)
	ErrNotResponder = apperror.New(
		apperror.CodeForbidden,
		"Only a Director, the project head or the assigner can respond",
		http.StatusForbidden,
	)
	ErrRequesterCannotRespond = apperror.New(
		apperror.CodeForbidden,
		"The requester cannot respond to their own request",
		http.StatusForbidden,
	)
	ErrTaskCompleted = apperror.New(
		apperror.CodeInvalidState,
		"Task is already completed",
		http.StatusConflict,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Request is not in a state that allows this action",
		http.StatusConflict,
	)
	ErrRequestedDateNotAfterDue = apperror.New(
		apperror.CodeInvalidInput,
		"Requested due date must be after the current due date",
		http.StatusBadRequest,
	)
	ErrResponseCommentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A comment is required when rejecting",
		http.StatusBadRequest,
	)
)
