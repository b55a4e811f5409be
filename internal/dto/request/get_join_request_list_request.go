package request

// GetJoinRequestListRequest 获取待审核入群申请列表请求
// 使用位置:
//   - internal/handler/member_handler.go: GetJoinRequestListHandler
//   - internal/service/member/service.go: GetJoinRequestList
type GetJoinRequestListRequest struct {
	GroupUuid string `form:"group_uuid" binding:"required"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}
