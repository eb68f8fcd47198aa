package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	// 出站：审核事件
	CommentStatusChanged string `mapstructure:"commentStatusChanged" yaml:"commentStatusChanged"` //  评论状态变更主题
	CommentDeleted       string `mapstructure:"commentDeleted" yaml:"commentDeleted"`             //  评论软删除/恢复主题
	ReportResolved       string `mapstructure:"reportResolved" yaml:"reportResolved"`             //  举报处理完成主题

	// 入站：外部服务写入
	CommentCreated       string `mapstructure:"commentCreated" yaml:"commentCreated"`             //  评论提交主题 (评论服务)
	ReportSubmitted      string `mapstructure:"reportSubmitted" yaml:"reportSubmitted"`           //  用户举报主题
	AutoModerationResult string `mapstructure:"autoModerationResult" yaml:"autoModerationResult"` //  自动审核裁决主题
}
