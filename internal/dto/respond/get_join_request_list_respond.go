package respond

// JoinRequestItem 待审核入群申请列表项
type JoinRequestItem struct {
	UserId    string `json:"user_id"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	AppliedAt string `json:"applied_at"`
}

// GetJoinRequestListRespond 获取待审核入群申请列表响应
// 使用位置:
//   - internal/service/member/service.go: GetJoinRequestList
type GetJoinRequestListRespond struct {
	Requests   []JoinRequestItem `json:"requests"`
	Pagination Pagination        `json:"pagination"`
}
