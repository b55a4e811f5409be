package request

// AcceptInviteRequest 接受入群邀请请求
// 使用位置:
//   - internal/handler/member_handler.go: AcceptInviteHandler
//   - internal/service/member/service.go: AcceptInvite
type AcceptInviteRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
}
