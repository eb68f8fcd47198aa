package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/dependencies"
	"github.com/Xushengqwer/comment_service/mq/producer"
	"github.com/Xushengqwer/comment_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/comment_service/repo/redis"
	"github.com/Xushengqwer/comment_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numComments int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numComments, "n", 200, "要生成的评论数量 (默认: 200)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		absConfigFile = configFile
	}
	if numComments <= 0 {
		fmt.Println("错误: 生成的评论数量必须大于 0")
		os.Exit(1)
	}
	fmt.Printf("准备使用配置文件 '%s' 生成 %d 条测试评论...\n", absConfigFile, numComments)

	// --- 1. 加载配置 ---
	var cfg appConfig.CommentConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() { _ = logger.Logger().Sync() }()

	// --- 3. 初始化 MySQL / Redis ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败 (Seeder)", zap.Error(redisErr))
	}

	// --- 4. 初始化 Service ---
	// Seeder 产生的状态变更不需要通知下游，事件一律丢弃
	base := logger.Logger()
	publisher := producer.NewNopProducer(base)
	logRepo := mysql.NewModerationLogRepository(db, base)
	moderationSvc := service.NewCommentModerationService(
		mysql.NewCommentRepository(db, base),
		logRepo,
		redisRepo.NewStatsCache(rdb, base),
		publisher,
		cfg.ModerationConfig,
		base,
	)
	reportSvc := service.NewReportService(mysql.NewReportRepository(db, base), logRepo, publisher, cfg.ModerationConfig, base)

	// --- 5. 执行数据填充 ---
	start := time.Now()
	Seed(context.Background(), moderationSvc, reportSvc, base, numComments)
	fmt.Printf("数据填充完成！总耗时: %v\n", time.Since(start))
}
