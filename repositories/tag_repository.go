package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"OrganizadorGo/models"
	"OrganizadorGo/utils"
)

// TagRepository 标签仓库
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// List 返回用户的全部标签，按名称升序
func (r *TagRepository) List(userID string) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Where("user_id = ?", userID).
		Order("name asc").
		Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("查询标签失败: %w", err)
	}
	return tags, nil
}

// Create 创建标签。名称去除首尾空白后不能为空；
// 同一用户下名称重复报 ErrConflict，不同用户可以同名。
func (r *TagRepository) Create(userID, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: 名称必填", ErrValidation)
	}

	var existing models.Tag
	if err := r.db.Where("name = ? AND user_id = ?", name, userID).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: 标签已存在", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询标签失败: %w", err)
	}

	tag := models.Tag{
		ID:     utils.GenerateID(),
		Name:   name,
		UserID: userID,
	}
	if err := r.db.Create(&tag).Error; err != nil {
		return nil, fmt.Errorf("创建标签失败: %w", err)
	}
	return &tag, nil
}

// Delete 删除标签。引用它的任务只解除关联，任务本身保留。
func (r *TagRepository) Delete(userID, tagID string) error {
	var tag models.Tag
	if err := r.db.Where("id = ? AND user_id = ?", tagID, userID).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("查询标签失败: %w", err)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_tags WHERE tag_id = ?", tag.ID).Error; err != nil {
			return fmt.Errorf("解除任务关联失败: %w", err)
		}
		if err := tx.Delete(&tag).Error; err != nil {
			return fmt.Errorf("删除标签失败: %w", err)
		}
		return nil
	})
}
