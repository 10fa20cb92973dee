package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"OrganizadorGo/models"
	"OrganizadorGo/repositories"
)

// TagController 标签控制器
type TagController struct {
	tags   *repositories.TagRepository
	logger *zap.SugaredLogger
}

func NewTagController(tags *repositories.TagRepository, logger *zap.SugaredLogger) *TagController {
	return &TagController{tags: tags, logger: logger}
}

// List 返回当前用户的全部标签，按名称升序
func (tc *TagController) List(c *gin.Context) {
	uid := c.GetString("uid")

	tags, err := tc.tags.List(uid)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// Create 创建标签
func (tc *TagController) Create(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "请求体格式错误"})
		return
	}

	tag, err := tc.tags.Create(uid, req.Name)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// Delete 删除标签，引用它的任务只解除关联
func (tc *TagController) Delete(c *gin.Context) {
	uid := c.GetString("uid")
	tagID := c.Param("id")

	if err := tc.tags.Delete(uid, tagID); err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
