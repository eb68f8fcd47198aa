package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/models/entities"
)

// mysqlConnectTimeout 启动时等待主库可用的最长时间 (容器编排下数据库可能晚于服务就绪)
const mysqlConnectTimeout = 30 * time.Second

// InitMySQL 初始化审核库：连接主库 → 注册从库 (读写分离) → 配置连接池 → 迁移审核相关的表。
func InitMySQL(cfg *appConfig.CommentConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig
	if mysqlCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (mysqlConfig.write.dsn) 未配置")
	}
	gormConfig := &gorm.Config{Logger: core.NewGormLogger(logger, cfg.GormLogConfig)}

	// 1. 主库
	db, err := openWithRetry(mysqlCfg.Write.DSN, gormConfig, logger)
	if err != nil {
		return nil, err
	}

	// 2. 从库：列表与统计查询走从库，状态变更始终写主库
	if err := registerReplicas(db, mysqlCfg, logger); err != nil {
		return nil, err
	}

	// 3. 连接池
	if err := configurePool(db, mysqlCfg, logger); err != nil {
		return nil, err
	}

	// 4. 迁移 (AutoMigrate 只会发往主库)
	if err := db.AutoMigrate(&entities.Comment{}, &entities.CommentReport{}, &entities.ModerationLog{}); err != nil {
		logger.Error("审核库自动迁移失败", zap.Error(err))
		return nil, fmt.Errorf("审核库自动迁移失败: %w", err)
	}

	logger.Info("审核库初始化完成", zap.Int("replicas", len(mysqlCfg.Read)))
	return db, nil
}

// openWithRetry 按指数退避连接主库并 Ping，直到成功或超过 mysqlConnectTimeout。
func openWithRetry(dsn string, gormConfig *gorm.Config, logger *core.ZapLogger) (*gorm.DB, error) {
	var db *gorm.DB
	connect := func() error {
		opened, err := gorm.Open(mysql.Open(dsn), gormConfig)
		if err != nil {
			return err
		}
		sqlDB, err := opened.DB()
		if err != nil {
			return backoff.Permanent(err)
		}
		if err := sqlDB.Ping(); err != nil {
			_ = sqlDB.Close()
			return err
		}
		db = opened
		return nil
	}

	policy := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(time.Second),
		backoff.WithMaxInterval(5*time.Second),
		backoff.WithMaxElapsedTime(mysqlConnectTimeout),
	)
	notify := func(err error, next time.Duration) {
		logger.Warn("主数据库暂不可用，稍后重试", zap.Duration("retryIn", next), zap.Error(err))
	}

	logger.Info("开始连接主数据库...")
	if err := backoff.RetryNotify(connect, backoff.WithContext(policy, context.Background()), notify); err != nil {
		logger.Error("无法连接到主数据库", zap.Error(err))
		return nil, fmt.Errorf("无法连接到主数据库: %w", err)
	}
	logger.Info("成功连接到主数据库")
	return db, nil
}

// registerReplicas 有可用从库时启用 dbresolver，空 DSN 会被跳过。
func registerReplicas(db *gorm.DB, mysqlCfg appConfig.MySQLConfig, logger *core.ZapLogger) error {
	replicas := make([]gorm.Dialector, 0, len(mysqlCfg.Read))
	for i, replica := range mysqlCfg.Read {
		if replica.DSN == "" {
			logger.Warn("从库 DSN 为空，已跳过", zap.Int("index", i))
			continue
		}
		replicas = append(replicas, mysql.Open(replica.DSN))
	}
	if len(replicas) == 0 {
		logger.Info("未配置从库，所有查询走主库")
		return nil
	}

	err := db.Use(dbresolver.Register(dbresolver.Config{
		Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
		Replicas: replicas,
		Policy:   dbresolver.StrictRoundRobinPolicy(),
	}))
	if err != nil {
		logger.Error("配置读写分离失败", zap.Error(err))
		return fmt.Errorf("配置 GORM 读写分离失败: %w", err)
	}
	logger.Info("已启用读写分离", zap.Int("replicas", len(replicas)))
	return nil
}

// configurePool 应用连接池参数 (主库独立设置优先于共享设置)，并再次 Ping 确认可用。
func configurePool(db *gorm.DB, mysqlCfg appConfig.MySQLConfig, logger *core.ZapLogger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("无法获取数据库对象: %w", err)
	}
	maxIdle, maxOpen, maxLife := mysqlCfg.PoolSettings()
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLife) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		logger.Error("配置连接池后 Ping 数据库失败", zap.Error(err))
		return fmt.Errorf("配置连接池后 Ping 失败: %w", err)
	}
	logger.Info("数据库连接池已配置",
		zap.Int("maxIdleConns", maxIdle),
		zap.Int("maxOpenConns", maxOpen),
		zap.Int("connMaxLifetimeSec", maxLife))
	return nil
}
