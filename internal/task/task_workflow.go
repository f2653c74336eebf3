package task

import (
	"strings"
	"time"

	"go-workboard/internal/domain"
	"go-workboard/internal/shared/apperror"
	"go-workboard/internal/status"
	taskerrors "go-workboard/internal/task/errors"

	"github.com/google/uuid"
)

const (
	WorkflowExtension  = "extension"
	WorkflowCompletion = "completion"
)

// States from which a new request may be opened. An approved extension can be
// followed by another one; an approved completion locks the task.
var requestableFrom = map[string]map[string]bool{
	WorkflowExtension: {
		status.RequestNone:     true,
		status.RequestRejected: true,
		status.RequestApproved: true,
	},
	WorkflowCompletion: {
		status.RequestNone:     true,
		status.RequestRejected: true,
	},
}

func canOpen(workflow, current string) bool {
	return requestableFrom[workflow][current]
}

func checkRequester(t *Task, actor domain.Actor) error {
	if !t.IsAssignee(actor.EmployeeID) {
		return taskerrors.ErrNotAssignee
	}
	if t.Status == status.TaskCompleted {
		return taskerrors.ErrTaskCompleted
	}
	return nil
}

func checkResponder(t *Task, actor domain.Actor, requestedBy *uuid.UUID) error {
	if requestedBy != nil && requestedBy.String() == actor.EmployeeID {
		return taskerrors.ErrRequesterCannotRespond
	}
	if actor.IsDirector() || t.IsHeadedBy(actor.EmployeeID) || t.IsAssigner(actor.EmployeeID) {
		return nil
	}
	return taskerrors.ErrNotResponder
}

func checkDecision(decision, responseComment string) error {
	if decision != status.RequestApproved && decision != status.RequestRejected {
		return taskerrors.ErrInvalidTransition
	}
	if decision == status.RequestRejected && strings.TrimSpace(responseComment) == "" {
		return taskerrors.ErrResponseCommentRequired
	}
	return nil
}

func actorUUID(actor domain.Actor) *uuid.UUID {
	id, err := uuid.Parse(actor.EmployeeID)
	if err != nil {
		return nil
	}
	return &id
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// OpenExtension moves the extension request to Pending.
func OpenExtension(t *Task, actor domain.Actor, requestedDueDate time.Time, reason string, now time.Time) error {
	if err := checkRequester(t, actor); err != nil {
		return err
	}
	if !canOpen(WorkflowExtension, t.ExtensionRequestStatus) {
		return taskerrors.ErrInvalidTransition
	}
	requestedDueDate = truncateDay(requestedDueDate)
	if !requestedDueDate.After(truncateDay(t.DueDate)) {
		return taskerrors.ErrRequestedDateNotAfterDue
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperror.RequiredField("Reason")
	}

	t.ExtensionRequestStatus = status.RequestPending
	t.ExtensionRequestedAt = &now
	t.ExtensionRequestedByID = actorUUID(actor)
	t.ExtensionRequestedDueDate = &requestedDueDate
	t.ExtensionReason = reason
	t.ExtensionRespondedByID = nil
	t.ExtensionRespondedAt = nil
	t.ExtensionResponseComment = ""
	return nil
}

// ResolveExtension approves or rejects a pending extension. Approval moves the
// due date and brings an Overdue task back to In Progress.
func ResolveExtension(t *Task, actor domain.Actor, decision, responseComment string, now time.Time) error {
	if t.ExtensionRequestStatus != status.RequestPending {
		return taskerrors.ErrInvalidTransition
	}
	if err := checkResponder(t, actor, t.ExtensionRequestedByID); err != nil {
		return err
	}
	if err := checkDecision(decision, responseComment); err != nil {
		return err
	}

	t.ExtensionRequestStatus = decision
	t.ExtensionRespondedByID = actorUUID(actor)
	t.ExtensionRespondedAt = &now
	t.ExtensionResponseComment = strings.TrimSpace(responseComment)

	if decision == status.RequestApproved && t.ExtensionRequestedDueDate != nil {
		t.DueDate = *t.ExtensionRequestedDueDate
		if t.Status == status.TaskOverdue {
			t.Status = status.TaskInProgress
		}
	}
	return nil
}

func OpenCompletion(t *Task, actor domain.Actor, note string, now time.Time) error {
	if err := checkRequester(t, actor); err != nil {
		return err
	}
	if !canOpen(WorkflowCompletion, t.CompletionRequestStatus) {
		return taskerrors.ErrInvalidTransition
	}

	t.CompletionRequestStatus = status.RequestPending
	t.CompletionRequestedAt = &now
	t.CompletionRequestedByID = actorUUID(actor)
	t.CompletionNote = strings.TrimSpace(note)
	t.CompletionRespondedByID = nil
	t.CompletionRespondedAt = nil
	t.CompletionResponseComment = ""
	return nil
}

// ResolveCompletion approves or rejects a pending completion. Approval completes
// and locks the task; rating is kept only on approval.
func ResolveCompletion(t *Task, actor domain.Actor, decision, responseComment string, rating *int, now time.Time) error {
	if t.CompletionRequestStatus != status.RequestPending {
		return taskerrors.ErrInvalidTransition
	}
	if err := checkResponder(t, actor, t.CompletionRequestedByID); err != nil {
		return err
	}
	if err := checkDecision(decision, responseComment); err != nil {
		return err
	}

	t.CompletionRequestStatus = decision
	t.CompletionRespondedByID = actorUUID(actor)
	t.CompletionRespondedAt = &now
	t.CompletionResponseComment = strings.TrimSpace(responseComment)

	if decision == status.RequestApproved {
		completed := truncateDay(now)
		t.Status = status.TaskCompleted
		t.CompletedDate = &completed
		t.IsLocked = true
		if rating != nil {
			r := *rating
			t.Rating = &r
		}
	}
	return nil
}

// Reopen undoes an approved completion so the assignees can work and request
// completion again. The caller sets the new status.
func Reopen(t *Task) {
	t.CompletedDate = nil
	t.IsLocked = false
	t.Rating = nil
	if t.CompletionRequestStatus == status.RequestApproved {
		t.CompletionRequestStatus = status.RequestNone
	}
}
