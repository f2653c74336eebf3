package project

import "go-workboard/internal/comment"

type CreateProjectRequest struct {
	Name          string `json:"name" binding:"required"`
	ProjectNumber string `json:"projectNumber"`
	Location      string `json:"location"`
	Description   string `json:"description" binding:"required"`
	AssignedToID  string `json:"assignedToId" binding:"required,uuid"`
	Status        string `json:"status" binding:"required"`
	Progress      *int   `json:"progress" binding:"omitempty,min=0,max=100"`
}

type UpdateProjectRequest struct {
	Name          string `json:"name" binding:"required"`
	ProjectNumber string `json:"projectNumber"`
	Location      string `json:"location"`
	Description   string `json:"description" binding:"required"`
	AssignedToID  string `json:"assignedToId" binding:"required,uuid"`
	Status        string `json:"status" binding:"required"`
	Progress      *int   `json:"progress" binding:"omitempty,min=0,max=100"`
}

type AddRemarkRequest struct {
	Text string `json:"text" binding:"required"`
}

type RemarkResponse struct {
	ID         string `json:"id"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Text       string `json:"text"`
	CreatedAt  string `json:"createdAt"`
}

type ProjectResponse struct {
	ID             string                    `json:"id"`
	Name           string                    `json:"name"`
	ProjectNumber  string                    `json:"projectNumber"`
	Location       string                    `json:"location"`
	Description    string                    `json:"description"`
	AssignedToID   string                    `json:"assignedToId"`
	AssignedToName string                    `json:"assignedToName,omitempty"`
	Status         string                    `json:"status"`
	StatusColor    string                    `json:"statusColor"`
	Progress       int                       `json:"progress"`
	Remarks        []RemarkResponse          `json:"remarks"`
	Comments       []comment.CommentResponse `json:"comments"`
	CreatedAt      string                    `json:"createdAt"`
	UpdatedAt      string                    `json:"updatedAt"`
}
