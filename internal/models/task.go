package models

import (
	"time"
)

type TaskState string

const (
	TaskStatePendiente  TaskState = "PENDIENTE"
	TaskStateEnProgreso TaskState = "EN_PROGRESO"
	TaskStateCompletada TaskState = "COMPLETADA"
)

// Valid reports whether s is one of the known task states.
func (s TaskState) Valid() bool {
	switch s {
	case TaskStatePendiente, TaskStateEnProgreso, TaskStateCompletada:
		return true
	}
	return false
}

type Task struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Title        string     `gorm:"type:varchar(100);not null" json:"title"`
	Description  string     `gorm:"type:varchar(255)" json:"description"`
	Status       Status     `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	State        TaskState  `gorm:"type:varchar(20);not null;default:'PENDIENTE'" json:"state"`
	DueDate      *time.Time `json:"due_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	AssignedToID uint64     `gorm:"not null" json:"assigned_to_id"`
	ProjectID    uint64     `gorm:"not null" json:"project_id"`
	AuditInfo

	// Relations
	AssignedTo User    `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
	Project    Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
