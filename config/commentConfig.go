package config

import "github.com/Xushengqwer/go-common/config"

type CommentConfig struct {
	ZapConfig        config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig    config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig     config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig     config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	ModerationConfig ModerationConfig     `mapstructure:"moderationConfig" json:"moderationConfig" yaml:"moderationConfig"`
	CSRFConfig       CSRFConfig           `mapstructure:"csrfConfig" json:"csrfConfig" yaml:"csrfConfig"`
	SentryConfig     SentryConfig         `mapstructure:"sentryConfig" json:"sentryConfig" yaml:"sentryConfig"`
	MySQLConfig      MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig      RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig      KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig        COSConfig            `mapstructure:"archiveCosConfig" json:"archiveCosConfig" yaml:"archiveCosConfig"`
}
