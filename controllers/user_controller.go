package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"OrganizadorGo/repositories"
)

// UserController 用户控制器
type UserController struct {
	users  *repositories.UserRepository
	logger *zap.SugaredLogger
}

func NewUserController(users *repositories.UserRepository, logger *zap.SugaredLogger) *UserController {
	return &UserController{users: users, logger: logger}
}

// GetUser 返回当前用户的公开信息
func (uc *UserController) GetUser(c *gin.Context) {
	uid := c.GetString("uid")

	user, err := uc.users.FindByID(uid)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.ToPublic()})
}

// DeleteUser 删除当前账号，级联删除其任务、标签和番茄钟记录
func (uc *UserController) DeleteUser(c *gin.Context) {
	uid := c.GetString("uid")

	if err := uc.users.Delete(uid); err != nil {
		respondError(c, uc.logger, err)
		return
	}

	uc.logger.Infow("用户账号已删除", "userID", uid)

	c.Status(http.StatusNoContent)
}
