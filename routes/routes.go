package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"OrganizadorGo/controllers"
	"OrganizadorGo/middleware"
	"OrganizadorGo/repositories"
	"OrganizadorGo/services"
)

// Deps 路由依赖，由 main 在启动时装配
type Deps struct {
	DB                *gorm.DB
	Denylist          services.TokenDenylist
	Logger            *zap.SugaredLogger
	InternalAuthToken string
}

// RegisterRoutes 注册全部路由
func RegisterRoutes(r *gin.Engine, deps Deps) {
	userRepo := repositories.NewUserRepository(deps.DB)
	taskRepo := repositories.NewTaskRepository(deps.DB)
	tagRepo := repositories.NewTagRepository(deps.DB)
	pomodoroRepo := repositories.NewPomodoroRepository(deps.DB)

	authController := controllers.NewAuthController(userRepo, deps.Denylist, deps.Logger)
	taskController := controllers.NewTaskController(taskRepo, deps.Logger)
	tagController := controllers.NewTagController(tagRepo, deps.Logger)
	pomodoroController := controllers.NewPomodoroController(pomodoroRepo, deps.Logger)
	userController := controllers.NewUserController(userRepo, deps.Logger)

	// 公开路由（无需认证）
	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)

	// 需要认证的路由
	private := r.Group("/")
	private.Use(middleware.AuthMiddleware(deps.Denylist))
	{
		private.POST("/logout", authController.Logout)
		private.GET("/check_auth", authController.CheckAuth)

		private.GET("/tasks", taskController.List)
		private.POST("/tasks", taskController.Create)
		private.PUT("/tasks/:id", taskController.Update)
		private.DELETE("/tasks/:id", taskController.Delete)
		private.PATCH("/tasks/:id/complete", taskController.SetCompletion)

		private.GET("/tags", tagController.List)
		private.POST("/tags", tagController.Create)
		private.DELETE("/tags/:id", tagController.Delete)

		private.POST("/pomodoro-sessions", pomodoroController.Record)
		private.GET("/pomodoro-sessions", pomodoroController.List)

		private.GET("/user", userController.GetUser)
		private.DELETE("/user", userController.DeleteUser)
	}

	// 内部路由组（仅限服务器内部调用）
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware(deps.InternalAuthToken))
	{
		internal.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
