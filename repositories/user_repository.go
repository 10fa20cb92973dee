package repositories

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"OrganizadorGo/models"
	"OrganizadorGo/utils"
)

// 邮箱格式校验，local@domain.tld 形态即可
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserRepository 用户仓库
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Register 注册新用户。只存储密码哈希，明文不落库。
func (r *UserRepository) Register(email, password, name string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: 邮箱和密码必填", ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: 邮箱格式无效", ErrValidation)
	}

	var existing models.User
	if err := r.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: 邮箱已注册", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	user := models.User{
		ID:           utils.GenerateID(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	return &user, nil
}

// Authenticate 按邮箱精确查找并校验密码。
// 无论是用户不存在还是密码错误都返回同一个错误，避免账号枚举。
func (r *UserRepository) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrUnauthorized
	}
	if !utils.CheckPassword(password, user.PasswordHash) {
		return nil, ErrUnauthorized
	}
	return &user, nil
}

// FindByID 按ID查找用户
func (r *UserRepository) FindByID(userID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return &user, nil
}

// Delete 删除用户并级联删除其全部任务、标签和番茄钟记录
func (r *UserRepository) Delete(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("查询用户失败: %w", err)
		}

		// 先清理任务-标签关联，再删实体
		if err := tx.Exec(
			"DELETE FROM task_tags WHERE task_id IN (SELECT id FROM tasks WHERE user_id = ?)",
			userID,
		).Error; err != nil {
			return fmt.Errorf("清理任务标签关联失败: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("删除任务失败: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Tag{}).Error; err != nil {
			return fmt.Errorf("删除标签失败: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.PomodoroSession{}).Error; err != nil {
			return fmt.Errorf("删除番茄钟记录失败: %w", err)
		}
		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("删除用户失败: %w", err)
		}
		return nil
	})
}
