package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"OrganizadorGo/config"
	"OrganizadorGo/middleware"
	"OrganizadorGo/routes"
	"OrganizadorGo/services"
	"OrganizadorGo/utils"
)

func main() {
	// 初始化日志
	logger, err := config.NewLogger()
	if err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer logger.Sync()

	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}
	if err := conf.Validate(); err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	// JWT密钥必须由配置显式提供
	if err := utils.InitJWT(conf.JWTSecret); err != nil {
		log.Fatalf("无法初始化JWT: %v", err)
	}

	// 初始化数据库
	db, err := config.InitDB(conf)
	if err != nil {
		log.Fatalf("无法初始化数据库: %v", err)
	}
	defer config.CloseDB(db)

	// 初始化Redis（登出令牌名单）
	redisClient, err := config.InitRedis(conf)
	if err != nil {
		log.Fatalf("无法初始化Redis: %v", err)
	}
	denylist := services.NewRedisDenylist(redisClient)

	// 设置Gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建Gin引擎
	r := gin.New()

	// 设置中间件
	middleware.SetupMiddleware(r, conf.CORSOrigin)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	// 注册路由
	routes.RegisterRoutes(r, routes.Deps{
		DB:                db,
		Denylist:          denylist,
		Logger:            logger,
		InternalAuthToken: conf.InternalAuthToken,
	})

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		logger.Infof("启动服务器，监听端口: %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务器关闭失败: %v", err)
	}

	logger.Info("服务器已关闭")
}
