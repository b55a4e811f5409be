package respond

// CommentRespond 评论响应
// 使用位置:
//   - internal/service/comment/service.go: CreateComment, GetCommentList
type CommentRespond struct {
	Uuid           string `json:"uuid"`
	PostUuid       string `json:"post_uuid"`
	AuthorUuid     string `json:"author_uuid"`
	AuthorNickname string `json:"author_nickname"`
	AuthorAvatar   string `json:"author_avatar"`
	Content        string `json:"content"`
	CreatedAt      string `json:"created_at"`
}

// GetCommentListRespond 评论列表响应
// 使用位置:
//   - internal/service/comment/service.go: GetCommentList
type GetCommentListRespond struct {
	Comments   []CommentRespond `json:"comments"`
	Pagination Pagination       `json:"pagination"`
}
