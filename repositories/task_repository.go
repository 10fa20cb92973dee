package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"OrganizadorGo/models"
	"OrganizadorGo/utils"
)

// TaskRepository 任务仓库，所有读写都按所有者ID过滤
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List 返回用户的全部任务：未完成在前，按到期时间升序（空值在后），
// 再按创建时间降序。标签一并加载。
func (r *TaskRepository) List(userID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Preload("Tags").
		Where("user_id = ?", userID).
		Order("completed asc").
		Order("due_date IS NULL, due_date asc").
		Order("created_at desc").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("查询任务失败: %w", err)
	}
	for i := range tasks {
		if tasks[i].Tags == nil {
			tasks[i].Tags = []models.Tag{}
		}
	}
	return tasks, nil
}

// Create 创建任务。title 必填；due_date 必须是合法的 ISO-8601；
// tag_ids 里不属于该用户的标签会被静默丢弃。
func (r *TaskRepository) Create(userID string, req models.CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: 标题必填", ErrValidation)
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := utils.ParseDueDate(*req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		dueDate = &parsed
	}

	task := models.Task{
		ID:                 utils.GenerateID(),
		UserID:             userID,
		Title:              title,
		Description:        req.Description,
		DueDate:            dueDate,
		Status:             defaultString(req.Status, models.StatusPending),
		Priority:           defaultString(req.Priority, "normal"),
		EisenhowerQuadrant: defaultString(req.EisenhowerQuadrant, models.QuadrantNeither),
		Completed:          req.Completed,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return fmt.Errorf("创建任务失败: %w", err)
		}
		if len(req.TagIDs) > 0 {
			tags, err := r.resolveTags(tx, userID, req.TagIDs)
			if err != nil {
				return err
			}
			if err := replaceTags(tx, &task, tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.reload(task.ID)
}

// Update 部分更新：载荷里出现的字段才会被修改。
// due_date 显式传 null 表示清空，不传则保持原值。
// tag_ids 出现时整组替换（先清后加），不做增量合并。
func (r *TaskRepository) Update(userID, taskID string, req models.UpdateTaskRequest) (*models.Task, error) {
	task, err := r.findOwned(userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: 标题不能为空", ErrValidation)
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.EisenhowerQuadrant != nil {
		task.EisenhowerQuadrant = *req.EisenhowerQuadrant
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.DueDate.Set {
		if req.DueDate.Value == nil || *req.DueDate.Value == "" {
			task.DueDate = nil
		} else {
			parsed, err := utils.ParseDueDate(*req.DueDate.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrValidation, err)
			}
			task.DueDate = &parsed
		}
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		// Select("*") 保证 due_date 清空时 NULL 也会写回
		if err := tx.Model(task).Select("*").Omit("id", "user_id", "created_at", "Tags").
			Updates(task).Error; err != nil {
			return fmt.Errorf("更新任务失败: %w", err)
		}
		if req.TagIDs != nil {
			tags, err := r.resolveTags(tx, userID, *req.TagIDs)
			if err != nil {
				return err
			}
			if err := replaceTags(tx, task, tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.reload(taskID)
}

// SetCompletion 设置完成标志
func (r *TaskRepository) SetCompletion(userID, taskID string, completed bool) (*models.Task, error) {
	task, err := r.findOwned(userID, taskID)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(task).Update("completed", completed).Error; err != nil {
		return nil, fmt.Errorf("更新完成状态失败: %w", err)
	}

	return r.reload(taskID)
}

// Delete 删除任务及其标签关联。重复删除同一ID会返回 ErrNotFound。
func (r *TaskRepository) Delete(userID, taskID string) error {
	task, err := r.findOwned(userID, taskID)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(task).Association("Tags").Clear(); err != nil {
			return fmt.Errorf("清理标签关联失败: %w", err)
		}
		if err := tx.Delete(task).Error; err != nil {
			return fmt.Errorf("删除任务失败: %w", err)
		}
		return nil
	})
}

// findOwned 按 id 和所有者查找。不属于该用户的任务一律当作不存在，
// 不区分“别人的”和“没有的”。
func (r *TaskRepository) findOwned(userID, taskID string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询任务失败: %w", err)
	}
	return &task, nil
}

// replaceTags 整组替换任务的标签集（先清后加）
func replaceTags(tx *gorm.DB, task *models.Task, tags []models.Tag) error {
	assoc := tx.Model(task).Association("Tags")
	if len(tags) == 0 {
		if err := assoc.Clear(); err != nil {
			return fmt.Errorf("清空标签失败: %w", err)
		}
		return nil
	}
	if err := assoc.Replace(tags); err != nil {
		return fmt.Errorf("替换标签失败: %w", err)
	}
	return nil
}

// resolveTags 把标签ID解析成该用户自己的标签，越权或不存在的ID静默丢弃
func (r *TaskRepository) resolveTags(tx *gorm.DB, userID string, tagIDs []string) ([]models.Tag, error) {
	if len(tagIDs) == 0 {
		return []models.Tag{}, nil
	}
	var tags []models.Tag
	if err := tx.Where("id IN ? AND user_id = ?", tagIDs, userID).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("解析标签失败: %w", err)
	}
	return tags, nil
}

func (r *TaskRepository) reload(taskID string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Preload("Tags").Where("id = ?", taskID).First(&task).Error; err != nil {
		return nil, fmt.Errorf("重新加载任务失败: %w", err)
	}
	// 序列化时 tags 要保持为数组而不是 null
	if task.Tags == nil {
		task.Tags = []models.Tag{}
	}
	return &task, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
