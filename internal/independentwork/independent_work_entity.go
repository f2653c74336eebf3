package independentwork

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Entry struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	EmployeeName string       `gorm:"type:varchar(255)"`
	Date         time.Time    `gorm:"type:date;not null;index"`
	Description  string       `gorm:"type:text;not null"`
	Category     string       `gorm:"type:varchar(100);not null"`
	Hours        float64      `gorm:"type:numeric(4,2);not null"`
	CreatedByID  uuid.UUID    `gorm:"type:uuid"`
	Attachments  []Attachment `gorm:"foreignKey:EntryID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Entry) TableName() string { return "independent_work" }

// Attachment keeps the decoded file bytes; responses re-encode them as base64.
type Attachment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntryID     uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100)"`
	Size        int64     `gorm:"not null"`
	Data        []byte    `gorm:"type:bytea;not null"`
	CreatedAt   time.Time
}

func (Attachment) TableName() string { return "independent_work_attachments" }
