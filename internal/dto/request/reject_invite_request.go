package request

// RejectInviteRequest 拒绝入群邀请请求
// 使用位置:
//   - internal/handler/member_handler.go: RejectInviteHandler
//   - internal/service/member/service.go: RejectInvite
type RejectInviteRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
}
