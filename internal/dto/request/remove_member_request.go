package request

// RemoveMemberRequest 移除群成员请求
// 使用位置:
//   - internal/handler/member_handler.go: RemoveMemberHandler
//   - internal/service/member/service.go: RemoveMember
type RemoveMemberRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
	UserUuid  string `json:"user_uuid" binding:"required"`
}
