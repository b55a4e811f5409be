package request

// GetGroupListRequest 获取机构群组列表请求
// 使用位置:
//   - internal/handler/group_handler.go: GetGroupListHandler
//   - internal/service/group/service.go: GetGroupList
type GetGroupListRequest struct {
	InstitutionUuid string `form:"institution_uuid" binding:"required"`
	Page            int    `form:"page"`
	PageSize        int    `form:"page_size"`
}
