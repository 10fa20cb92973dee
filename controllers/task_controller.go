package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"OrganizadorGo/models"
	"OrganizadorGo/repositories"
)

// TaskController 任务控制器
type TaskController struct {
	tasks  *repositories.TaskRepository
	logger *zap.SugaredLogger
}

func NewTaskController(tasks *repositories.TaskRepository, logger *zap.SugaredLogger) *TaskController {
	return &TaskController{tasks: tasks, logger: logger}
}

// List 返回当前用户的全部任务
func (tc *TaskController) List(c *gin.Context) {
	uid := c.GetString("uid")

	tasks, err := tc.tasks.List(uid)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// Create 创建任务
func (tc *TaskController) Create(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "请求体格式错误"})
		return
	}

	task, err := tc.tasks.Create(uid, req)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// Update 部分更新任务
func (tc *TaskController) Update(c *gin.Context) {
	uid := c.GetString("uid")
	taskID := c.Param("id")

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "请求体格式错误"})
		return
	}

	task, err := tc.tasks.Update(uid, taskID, req)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// SetCompletion 设置完成标志，载荷里必须带 completed 字段
func (tc *TaskController) SetCompletion(c *gin.Context) {
	uid := c.GetString("uid")
	taskID := c.Param("id")

	var req models.CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "请求体格式错误"})
		return
	}
	if req.Completed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "completed 字段必填"})
		return
	}

	task, err := tc.tasks.SetCompletion(uid, taskID, *req.Completed)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete 删除任务
func (tc *TaskController) Delete(c *gin.Context) {
	uid := c.GetString("uid")
	taskID := c.Param("id")

	if err := tc.tasks.Delete(uid, taskID); err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
