package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"OrganizadorGo/repositories"
)

// respondError 把仓库层错误映射为 HTTP 状态码。
// 未知错误（存储层故障等）一律 500，细节只进日志不进响应。
func respondError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, repositories.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, repositories.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "凭据无效"})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "记录不存在"})
	case errors.Is(err, repositories.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		logger.Errorw("请求处理失败",
			"error", err,
			"path", c.Request.URL.Path,
			"requestID", c.GetString("requestID"),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "服务器内部错误"})
	}
}
