package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"OrganizadorGo/services"
	"OrganizadorGo/utils"
)

// AuthMiddleware 认证中间件：解析 Bearer 令牌，拒绝已注销的令牌，
// 并把 uid 写入 gin.Context 供后续处理使用
func AuthMiddleware(denylist services.TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "未提供认证信息"})
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		// 解析 JWT
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "无效的认证信息"})
			return
		}

		// 已登出的令牌在过期前一直拒绝
		revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil || revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "无效的认证信息"})
			return
		}

		c.Set("uid", claims.UserID)
		c.Set("claims", claims)
		c.Next()
	}
}
