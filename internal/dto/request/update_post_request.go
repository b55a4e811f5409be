package request

// UpdatePostRequest 编辑帖子请求
// 使用位置:
//   - internal/handler/post_handler.go: UpdatePostHandler
//   - internal/service/post/service.go: UpdatePost
type UpdatePostRequest struct {
	PostUuid   string  `json:"post_uuid" binding:"required"`
	Content    *string `json:"content"`
	Visibility *int8   `json:"visibility"`
}
