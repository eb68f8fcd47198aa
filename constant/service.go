package constant

// 服务元信息，用于追踪与日志
const (
	ServiceName    = "comment_service"
	ServiceVersion = "1.0.0"
)

// 分页相关常量
const (
	// DefaultPageSize 是列表接口未指定 page_size 时使用的默认值。
	DefaultPageSize = 15
	// MaxPageSize 是服务端允许的单页最大条数，超出会被钳制。
	MaxPageSize = 100
)

// 系统操作者标识，用于审计日志与事件中的 actor 字段
const (
	// ActorAutoModeration 表示由外部自动审核服务下发的裁决。
	ActorAutoModeration = "system:auto-moderation"
	// ActorPurgeTask 表示定时清理任务。
	ActorPurgeTask = "system:purge-task"
)
