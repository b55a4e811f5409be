package request

// UnbanMemberRequest 解除封禁请求
// 解除后该用户可重新申请加入，不会自动恢复成员身份
// 使用位置:
//   - internal/handler/member_handler.go: UnbanMemberHandler
//   - internal/service/member/service.go: UnbanMember
type UnbanMemberRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
	UserUuid  string `json:"user_uuid" binding:"required"`
}
