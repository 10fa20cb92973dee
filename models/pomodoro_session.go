package models

import (
	"time"
)

// PomodoroSession 已完成的番茄钟记录，只追加不修改
type PomodoroSession struct {
	ID            string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(50);not null;index" json:"user_id"`
	DateCompleted time.Time `json:"date_completed"`
	// 时长（分钟），默认25
	Duration int `gorm:"default:25" json:"duration"`
}
