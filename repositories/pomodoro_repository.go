package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"OrganizadorGo/models"
	"OrganizadorGo/utils"
)

// PomodoroRepository 番茄钟记录仓库，只追加和读取
type PomodoroRepository struct {
	db *gorm.DB
}

func NewPomodoroRepository(db *gorm.DB) *PomodoroRepository {
	return &PomodoroRepository{db: db}
}

// Record 记录一次已完成的番茄钟。时长缺省为25分钟。
func (r *PomodoroRepository) Record(userID string, durationMinutes int) (*models.PomodoroSession, error) {
	if durationMinutes <= 0 {
		durationMinutes = 25
	}

	session := models.PomodoroSession{
		ID:            utils.GenerateID(),
		UserID:        userID,
		DateCompleted: time.Now().UTC(),
		Duration:      durationMinutes,
	}
	if err := r.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("记录番茄钟失败: %w", err)
	}
	return &session, nil
}

// List 返回用户的番茄钟记录，最新的在前
func (r *PomodoroRepository) List(userID string) ([]models.PomodoroSession, error) {
	var sessions []models.PomodoroSession
	if err := r.db.Where("user_id = ?", userID).
		Order("date_completed desc").
		Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("查询番茄钟记录失败: %w", err)
	}
	return sessions, nil
}
