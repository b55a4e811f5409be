package request

// RejectMemberRequest 拒绝入群申请请求
// 使用位置:
//   - internal/handler/member_handler.go: RejectMemberHandler
//   - internal/service/member/service.go: RejectMember
type RejectMemberRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
	UserUuid  string `json:"user_uuid" binding:"required"`
}
