package respond

// GroupSummary 群组摘要（列表项）
type GroupSummary struct {
	Uuid         string `json:"uuid"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Avatar       string `json:"avatar"`
	Privacy      int8   `json:"privacy"`
	Type         int8   `json:"type"`
	MembersCount int    `json:"members_count"`
	PostsCount   int    `json:"posts_count"`
}

// GetGroupListRespond 获取群组列表响应
// 使用位置:
//   - internal/service/group/service.go: GetGroupList, GetMyGroups
type GetGroupListRespond struct {
	Groups     []GroupSummary `json:"groups"`
	Pagination Pagination     `json:"pagination"`
}
