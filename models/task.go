package models

import (
	"time"
)

// 任务状态（看板列）
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// 艾森豪威尔四象限
const (
	QuadrantUrgentImportant    = "urgent_important"
	QuadrantImportantNotUrgent = "important_not_urgent"
	QuadrantUrgentNotImportant = "urgent_not_important"
	QuadrantNeither            = "neither"
)

// Task 任务模型
type Task struct {
	ID          string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID      string     `gorm:"type:varchar(50);not null;index" json:"user_id"`
	Title       string     `gorm:"type:varchar(150);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `gorm:"type:varchar(50);default:pending" json:"status"`
	Priority    string     `gorm:"type:varchar(50);default:normal" json:"priority"`
	// 四象限，默认 neither
	EisenhowerQuadrant string    `gorm:"type:varchar(50);default:neither" json:"eisenhower_quadrant"`
	Completed          bool      `gorm:"default:false" json:"completed"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Tags               []Tag     `gorm:"many2many:task_tags" json:"tags"`
}
