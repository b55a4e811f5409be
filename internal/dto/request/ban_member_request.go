package request

// BanMemberRequest 封禁群成员请求
// 使用位置:
//   - internal/handler/member_handler.go: BanMemberHandler
//   - internal/service/member/service.go: BanMember
type BanMemberRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
	UserUuid  string `json:"user_uuid" binding:"required"`
}
