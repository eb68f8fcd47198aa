package config

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Address      string `mapstructure:"address" json:"address" yaml:"address"`
	Password     string `mapstructure:"password" json:"-" yaml:"password"`
	DB           int    `mapstructure:"db" json:"db" yaml:"db"`
	DialTimeout  int    `mapstructure:"dialTimeout" json:"dialTimeout" yaml:"dialTimeout"`    // 秒
	ReadTimeout  int    `mapstructure:"readTimeout" json:"readTimeout" yaml:"readTimeout"`    // 秒
	WriteTimeout int    `mapstructure:"writeTimeout" json:"writeTimeout" yaml:"writeTimeout"` // 秒
	PoolSize     int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"`
}

// COSConfig 腾讯云 COS 配置，用于归档被物理清理的评论
type COSConfig struct {
	SecretID   string `mapstructure:"secret_id" json:"-" yaml:"secret_id"`
	SecretKey  string `mapstructure:"secret_key" json:"-" yaml:"secret_key"`
	BucketName string `mapstructure:"bucket_name" json:"bucket_name" yaml:"bucket_name"`
	AppID      string `mapstructure:"app_id" json:"app_id" yaml:"app_id"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
	BaseURL    string `mapstructure:"base_url" json:"base_url" yaml:"base_url"`
	// ArchivePrefix 归档对象的 Key 前缀，例如 "comment-archive/"
	ArchivePrefix string `mapstructure:"archive_prefix" json:"archive_prefix" yaml:"archive_prefix"`
}

// Enabled 判断 COS 归档是否配置完整。
func (c COSConfig) Enabled() bool {
	return c.SecretID != "" && c.SecretKey != "" && c.BucketName != "" && c.AppID != "" && c.Region != ""
}
