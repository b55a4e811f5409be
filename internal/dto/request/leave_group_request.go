package request

// LeaveGroupRequest 退出群组请求
// 使用位置:
//   - internal/handler/member_handler.go: LeaveGroupHandler
//   - internal/service/member/service.go: LeaveGroup
type LeaveGroupRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
}
