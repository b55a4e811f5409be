package respond

// PostMeta 查看者视角的帖子元信息
// 信息流按页批量推导，避免逐帖查询
type PostMeta struct {
	IsLiked     bool `json:"is_liked"`     // 查看者是否点赞过
	IsSaved     bool `json:"is_saved"`     // 查看者是否收藏过
	IsRead      bool `json:"is_read"`      // 查看者是否已读
	IsMine      bool `json:"is_mine"`      // 是否为查看者发布
	IsAdmin     bool `json:"is_admin"`     // 查看者是否为群管理员以上
	IsOwner     bool `json:"is_owner"`     // 查看者是否为群主
	IsModerator bool `json:"is_moderator"` // 查看者是否为协管员以上
	CanDelete   bool `json:"can_delete"`   // 查看者是否可删除此帖
}

// PostRespond 帖子响应
// 使用位置:
//   - internal/service/post/service.go: GetFeed, GetPinnedFeed, GetMarketplaceFeed, GetPost
type PostRespond struct {
	Uuid           string   `json:"uuid"`
	GroupUuid      string   `json:"group_uuid"`
	AuthorUuid     string   `json:"author_uuid"`
	AuthorNickname string   `json:"author_nickname"`
	AuthorAvatar   string   `json:"author_avatar"`
	Content        string   `json:"content"`
	Visibility     int8     `json:"visibility"`
	Type           int8     `json:"type"`
	IsPinned       bool     `json:"is_pinned"`
	IsApproved     bool     `json:"is_approved"`
	LikesCount     int      `json:"likes_count"`
	CommentsCount  int      `json:"comments_count"`
	CreatedAt      string   `json:"created_at"`
	Meta           PostMeta `json:"meta"`
}

// GetFeedRespond 信息流响应
// 使用位置:
//   - internal/service/post/service.go: GetFeed, GetPinnedFeed, GetMarketplaceFeed
type GetFeedRespond struct {
	Posts      []PostRespond `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}
