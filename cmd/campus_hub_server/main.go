package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"campus_hub_server/internal/config"
	dao "campus_hub_server/internal/dao/mysql"
	myredis "campus_hub_server/internal/dao/redis"
	"campus_hub_server/internal/gateway/websocket"
	"campus_hub_server/internal/handler"
	"campus_hub_server/internal/https_server"
	"campus_hub_server/internal/infrastructure/logger"
	"campus_hub_server/internal/infrastructure/mq"
	"campus_hub_server/internal/infrastructure/sms"
	"campus_hub_server/internal/service"
	"campus_hub_server/pkg/util/jwt"
	"campus_hub_server/pkg/util/snowflake"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化 JWT 与雪花 ID
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	snowflake.Init()

	// 4. 初始化参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}

	// 5. 初始化数据库与 Redis
	repos := dao.Init()
	zap.L().Info("数据库初始化成功")
	myredis.Init()
	cache := myredis.GetCacheService()
	zap.L().Info("Redis 初始化成功")

	// 6. 初始化 SMS Service
	smsService, err := sms.Init(cache)
	if err != nil {
		zap.L().Fatal("SMS Service 初始化失败", zap.Error(err))
	}
	zap.L().Info("SMS Service 初始化成功")

	// 7. 初始化活动事件管道与 WebSocket 网关
	// 依赖倒置: mq 消费端通过 NotificationSender 接口推送，websocket.Server 实现该接口
	publisher := mq.Init(conf.KafkaConfig.EventMode, repos)
	wsServer := websocket.InitServer(cache)
	mq.SetNotificationSender(wsServer)
	zap.L().Info("事件管道初始化成功")

	// 8. 初始化 Service 层（依赖注入）
	service.InitServices(repos, cache, smsService, publisher)
	zap.L().Info("Service 层初始化成功")

	// 9. 初始化 HTTP 服务器
	handlers := handler.NewHandlers(service.Svc)
	engine := https_server.Init(handlers)
	zap.L().Info("HTTP 服务器初始化成功")

	// 10. 启动服务
	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	mq.Close()
	zap.L().Info("服务器已关闭")
}
