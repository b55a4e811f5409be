package request

// CancelJoinRequest 撤回入群申请请求
// 使用位置:
//   - internal/handler/member_handler.go: CancelJoinHandler
//   - internal/service/member/service.go: CancelJoin
type CancelJoinRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
}
