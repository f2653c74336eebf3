package task

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Description   string     `gorm:"type:text"`
	ProjectID     *uuid.UUID `gorm:"type:uuid;index"`
	AssignedByID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProjectHeadID *uuid.UUID `gorm:"type:uuid;index"`
	Priority      string     `gorm:"type:varchar(20);not null"`
	Status        string     `gorm:"type:varchar(30);not null;index"`
	DueDate       time.Time  `gorm:"type:date;not null"`
	CompletedDate *time.Time `gorm:"type:date"`
	IsLocked      bool       `gorm:"not null;default:false"`
	Rating        *int

	ExtensionRequestStatus    string `gorm:"type:varchar(20);not null;default:''"`
	ExtensionRequestedAt      *time.Time
	ExtensionRequestedByID    *uuid.UUID `gorm:"type:uuid"`
	ExtensionRequestedDueDate *time.Time `gorm:"type:date"`
	ExtensionReason           string     `gorm:"type:text"`
	ExtensionRespondedByID    *uuid.UUID `gorm:"type:uuid"`
	ExtensionRespondedAt      *time.Time
	ExtensionResponseComment  string `gorm:"type:text"`

	CompletionRequestStatus   string `gorm:"type:varchar(20);not null;default:''"`
	CompletionRequestedAt     *time.Time
	CompletionRequestedByID   *uuid.UUID `gorm:"type:uuid"`
	CompletionNote            string     `gorm:"type:text"`
	CompletionRespondedByID   *uuid.UUID `gorm:"type:uuid"`
	CompletionRespondedAt     *time.Time
	CompletionResponseComment string `gorm:"type:text"`

	Assignees []Assignee `gorm:"foreignKey:TaskID"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type Assignee struct {
	TaskID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

func (Assignee) TableName() string { return "task_assignees" }

func (t *Task) AssigneeIDs() []string {
	ids := make([]string, len(t.Assignees))
	for i, a := range t.Assignees {
		ids[i] = a.EmployeeID.String()
	}
	return ids
}

func (t *Task) IsAssignee(employeeID string) bool {
	for _, a := range t.Assignees {
		if a.EmployeeID.String() == employeeID {
			return true
		}
	}
	return false
}

func (t *Task) IsAssigner(employeeID string) bool {
	return t.AssignedByID.String() == employeeID
}

func (t *Task) IsHeadedBy(employeeID string) bool {
	return t.ProjectHeadID != nil && t.ProjectHeadID.String() == employeeID
}
