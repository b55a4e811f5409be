package request

// GetMemberListRequest 获取群成员列表请求
// 使用位置:
//   - internal/handler/member_handler.go: GetMemberListHandler
//   - internal/service/member/service.go: GetMemberList
type GetMemberListRequest struct {
	GroupUuid string `form:"group_uuid" binding:"required"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}
