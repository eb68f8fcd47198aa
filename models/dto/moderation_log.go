package dto

// ListModerationLogsRequest 查询某个实体的审核轨迹
type ListModerationLogsRequest struct {
	EntityType string `form:"entity_type" json:"entity_type" binding:"required,oneof=comment report" example:"comment"`
	EntityID   uint64 `form:"entity_id" json:"entity_id" binding:"required,gt=0" example:"42"`
	Page       int    `form:"page" json:"page"`
	PageSize   int    `form:"page_size" json:"page_size"`
}
