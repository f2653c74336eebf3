package activity

import (
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventID       string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_task_activity_event"`
	TaskID        uuid.UUID `gorm:"type:uuid;not null;index"`
	EventType     string    `gorm:"type:varchar(60);not null"`
	ActorID       string    `gorm:"type:varchar(64)"`
	ActorName     string    `gorm:"type:varchar(255)"`
	ActorRole     string    `gorm:"type:varchar(30)"`
	Status        string    `gorm:"type:varchar(30)"`
	RequestStatus string    `gorm:"type:varchar(30)"`
	Note          string    `gorm:"type:text"`
	OccurredAt    time.Time `gorm:"not null"`
	CreatedAt     time.Time
}

func (Entry) TableName() string { return "task_activities" }
