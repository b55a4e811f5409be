package request

// AcceptMemberRequest 批准入群申请请求
// 使用位置:
//   - internal/handler/member_handler.go: AcceptMemberHandler
//   - internal/service/member/service.go: AcceptMember
type AcceptMemberRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
	UserUuid  string `json:"user_uuid" binding:"required"`
}
