package respond

// GroupMemberItem 群成员列表项
type GroupMemberItem struct {
	UserId   string `json:"user_id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Role     int8   `json:"role"`
}

// GetGroupMemberListRespond 获取群成员列表响应
// 使用位置:
//   - internal/service/member/service.go: GetMemberList
type GetGroupMemberListRespond struct {
	Members    []GroupMemberItem `json:"members"`
	Pagination Pagination        `json:"pagination"`
}
