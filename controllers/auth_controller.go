package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"OrganizadorGo/models"
	"OrganizadorGo/repositories"
	"OrganizadorGo/services"
	"OrganizadorGo/utils"
)

// AuthController 认证控制器
type AuthController struct {
	users    *repositories.UserRepository
	denylist services.TokenDenylist
	logger   *zap.SugaredLogger
}

func NewAuthController(users *repositories.UserRepository, denylist services.TokenDenylist, logger *zap.SugaredLogger) *AuthController {
	return &AuthController{users: users, denylist: denylist, logger: logger}
}

// Register 注册新用户，成功后直接发放令牌
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "请求体格式错误"})
		return
	}

	user, err := ac.users.Register(req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	ac.logger.Infow("用户注册成功", "userID", user.ID)

	c.JSON(http.StatusCreated, gin.H{
		"access_token": token,
		"user":         user.ToPublic(),
	})
}

// Login 邮箱密码登录
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "请求体格式错误"})
		return
	}

	user, err := ac.users.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user":         user.ToPublic(),
	})
}

// Logout 注销当前令牌，剩余有效期内加入拒绝名单
func (ac *AuthController) Logout(c *gin.Context) {
	value, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "未认证"})
		return
	}
	claims := value.(*utils.Claims)

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := ac.denylist.Revoke(c.Request.Context(), claims.ID, ttl); err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "已登出"})
}

// CheckAuth 认证探测接口，走到这里说明令牌有效
func (ac *AuthController) CheckAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}
