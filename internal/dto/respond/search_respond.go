package respond

// SearchUserItem 用户搜索结果项
type SearchUserItem struct {
	Uuid     string `json:"uuid"`
	Nickname string `json:"nickname"`
	Fullname string `json:"fullname"`
	Avatar   string `json:"avatar"`
}

// SearchGroupItem 群组搜索结果项
type SearchGroupItem struct {
	Uuid         string `json:"uuid"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Avatar       string `json:"avatar"`
	MembersCount int    `json:"members_count"`
}

// SearchPostItem 帖子搜索结果项
type SearchPostItem struct {
	Uuid       string `json:"uuid"`
	GroupUuid  string `json:"group_uuid"`
	AuthorUuid string `json:"author_uuid"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

// SearchRespond 全局搜索响应
// 按 scope 搜索时只填充对应的切片，其余为空
// 使用位置:
//   - internal/service/search/service.go: Search
type SearchRespond struct {
	Users      []SearchUserItem  `json:"users"`
	Groups     []SearchGroupItem `json:"groups"`
	Posts      []SearchPostItem  `json:"posts"`
	Pagination Pagination        `json:"pagination"`
}
