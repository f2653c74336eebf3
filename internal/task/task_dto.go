package task

import "go-workboard/internal/comment"

const DateLayout = "2006-01-02"

type CreateTaskRequest struct {
	Title               string   `json:"title" binding:"required"`
	Description         string   `json:"description"`
	ProjectID           string   `json:"projectId" binding:"omitempty,uuid"`
	AssignedEmployeeIDs []string `json:"assignedEmployeeIds" binding:"required,min=1,dive,uuid"`
	ProjectHeadID       string   `json:"projectHeadId" binding:"omitempty,uuid"`
	Priority            string   `json:"priority" binding:"required"`
	DueDate             string   `json:"dueDate" binding:"required,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Title               string   `json:"title" binding:"required"`
	Description         string   `json:"description"`
	ProjectID           string   `json:"projectId" binding:"omitempty,uuid"`
	AssignedEmployeeIDs []string `json:"assignedEmployeeIds" binding:"required,min=1,dive,uuid"`
	ProjectHeadID       string   `json:"projectHeadId" binding:"omitempty,uuid"`
	Priority            string   `json:"priority" binding:"required"`
	Status              string   `json:"status" binding:"required"`
	DueDate             string   `json:"dueDate" binding:"required,datetime=2006-01-02"`
}

type ExtensionRequest struct {
	RequestedDueDate string `json:"requestedDueDate" binding:"required,datetime=2006-01-02"`
	Reason           string `json:"reason" binding:"required"`
}

type CompletionRequest struct {
	Note string `json:"note"`
}

// RespondRequest answers a pending extension or completion request.
// Rating is only read when approving a completion.
type RespondRequest struct {
	Decision string `json:"decision" binding:"required,oneof=Approved Rejected"`
	Comment  string `json:"comment"`
	Rating   *int   `json:"rating" binding:"omitempty,min=1,max=5"`
}

type Filter struct {
	Status     string
	Priority   string
	ProjectID  string
	AssigneeID string
}

type AssigneeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type ExtensionResponse struct {
	Status           string `json:"status"`
	RequestedAt      string `json:"requestedAt,omitempty"`
	RequestedByID    string `json:"requestedById,omitempty"`
	RequestedDueDate string `json:"requestedDueDate,omitempty"`
	Reason           string `json:"reason,omitempty"`
	RespondedByID    string `json:"respondedById,omitempty"`
	RespondedAt      string `json:"respondedAt,omitempty"`
	ResponseComment  string `json:"responseComment,omitempty"`
	StatusColor      string `json:"statusColor"`
}

type CompletionResponse struct {
	Status          string `json:"status"`
	RequestedAt     string `json:"requestedAt,omitempty"`
	RequestedByID   string `json:"requestedById,omitempty"`
	Note            string `json:"note,omitempty"`
	RespondedByID   string `json:"respondedById,omitempty"`
	RespondedAt     string `json:"respondedAt,omitempty"`
	ResponseComment string `json:"responseComment,omitempty"`
	StatusColor     string `json:"statusColor"`
}

type TaskResponse struct {
	ID                string                    `json:"id"`
	Title             string                    `json:"title"`
	Description       string                    `json:"description"`
	ProjectID         string                    `json:"projectId,omitempty"`
	Assignees         []AssigneeResponse        `json:"assignees"`
	AssignedByID      string                    `json:"assignedById"`
	ProjectHeadID     string                    `json:"projectHeadId,omitempty"`
	Priority          string                    `json:"priority"`
	PriorityColor     string                    `json:"priorityColor"`
	Status            string                    `json:"status"`
	StatusColor       string                    `json:"statusColor"`
	DueDate           string                    `json:"dueDate"`
	CompletedDate     string                    `json:"completedDate,omitempty"`
	IsLocked          bool                      `json:"isLocked"`
	Rating            *int                      `json:"rating,omitempty"`
	ExtensionRequest  *ExtensionResponse        `json:"extensionRequest,omitempty"`
	CompletionRequest *CompletionResponse       `json:"completionRequest,omitempty"`
	Comments          []comment.CommentResponse `json:"comments"`
	CreatedAt         string                    `json:"createdAt"`
	UpdatedAt         string                    `json:"updatedAt"`
}
