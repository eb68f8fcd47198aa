package config

// SourceConfig 描述一个数据库源 (主库或从库)
type SourceConfig struct {
	DSN string `mapstructure:"dsn" yaml:"dsn"`
	// 以下为可选的连接池覆盖项，nil 表示沿用共享设置
	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 评论审核库的主从配置
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" yaml:"write"` // 主库，所有状态变更都写这里
	Read  []SourceConfig `mapstructure:"read" yaml:"read"`   // 从库，列表/统计查询走这里，可为空

	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒
}

// PoolSettings 计算主库最终生效的连接池参数 (主库独立设置优先于共享设置)。
func (c MySQLConfig) PoolSettings() (maxIdle, maxOpen, maxLifetimeSec int) {
	maxIdle, maxOpen, maxLifetimeSec = c.SharedMaxIdleConns, c.SharedMaxOpenConns, c.SharedConnMaxLifetime
	if c.Write.MaxIdleConns != nil {
		maxIdle = *c.Write.MaxIdleConns
	}
	if c.Write.MaxOpenConns != nil {
		maxOpen = *c.Write.MaxOpenConns
	}
	if c.Write.ConnMaxLifetime != nil {
		maxLifetimeSec = *c.Write.ConnMaxLifetime
	}
	return maxIdle, maxOpen, maxLifetimeSec
}
