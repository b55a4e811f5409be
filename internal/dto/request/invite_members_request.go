package request

// InviteMembersRequest 邀请用户加入群组请求
// 支持批量邀请，逐个返回邀请结果
// 使用位置:
//   - internal/handler/member_handler.go: InviteMembersHandler
//   - internal/service/member/service.go: InviteMembers
type InviteMembersRequest struct {
	GroupUuid string   `json:"group_uuid" binding:"required"`
	UserUuids []string `json:"user_uuids" binding:"required,min=1"`
}
