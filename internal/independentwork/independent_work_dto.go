package independentwork

import "go-workboard/internal/comment"

const DateLayout = "2006-01-02"

type AttachmentRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType"`
	// Data is standard base64, optionally as a data URL.
	Data string `json:"data" binding:"required"`
}

type CreateEntryRequest struct {
	EmployeeID  string              `json:"employeeId" binding:"omitempty,uuid"`
	Date        string              `json:"date" binding:"required,datetime=2006-01-02"`
	Description string              `json:"description" binding:"required"`
	Category    string              `json:"category" binding:"required"`
	Hours       float64             `json:"hours" binding:"required,gt=0,lte=24"`
	Attachments []AttachmentRequest `json:"attachments" binding:"omitempty,max=5,dive"`
}

// UpdateEntryRequest replaces the attachment list when Attachments is non-nil.
type UpdateEntryRequest struct {
	Date        string               `json:"date" binding:"required,datetime=2006-01-02"`
	Description string               `json:"description" binding:"required"`
	Category    string               `json:"category" binding:"required"`
	Hours       float64              `json:"hours" binding:"required,gt=0,lte=24"`
	Attachments *[]AttachmentRequest `json:"attachments" binding:"omitempty,max=5,dive"`
}

type AttachmentResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Data        string `json:"data"`
}

type EntryResponse struct {
	ID           string                    `json:"id"`
	EmployeeID   string                    `json:"employeeId"`
	EmployeeName string                    `json:"employeeName"`
	Date         string                    `json:"date"`
	Description  string                    `json:"description"`
	Category     string                    `json:"category"`
	Hours        float64                   `json:"hours"`
	Attachments  []AttachmentResponse      `json:"attachments"`
	Comments     []comment.CommentResponse `json:"comments"`
	CreatedAt    string                    `json:"createdAt"`
	UpdatedAt    string                    `json:"updatedAt"`
}
