package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"OrganizadorGo/models"
	"OrganizadorGo/repositories"
)

// PomodoroController 番茄钟记录控制器
type PomodoroController struct {
	sessions *repositories.PomodoroRepository
	logger   *zap.SugaredLogger
}

func NewPomodoroController(sessions *repositories.PomodoroRepository, logger *zap.SugaredLogger) *PomodoroController {
	return &PomodoroController{sessions: sessions, logger: logger}
}

// Record 记录一次已完成的番茄钟。认证通过即成功，没有别的校验。
func (pc *PomodoroController) Record(c *gin.Context) {
	uid := c.GetString("uid")

	// 空请求体也允许，此时用默认时长
	var req models.CreatePomodoroRequest
	_ = c.ShouldBindJSON(&req)

	session, err := pc.sessions.Record(uid, req.Duration)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// List 返回当前用户的番茄钟记录，最新的在前
func (pc *PomodoroController) List(c *gin.Context) {
	uid := c.GetString("uid")

	sessions, err := pc.sessions.List(uid)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}
