package request

// CreatePostRequest 发布帖子请求
// 使用位置:
//   - internal/handler/post_handler.go: CreatePostHandler
//   - internal/service/post/service.go: CreatePost
type CreatePostRequest struct {
	GroupUuid  string `json:"group_uuid" binding:"required"`
	Content    string `json:"content" binding:"required,max=5000"`
	Visibility int8   `json:"visibility"`
	Type       int8   `json:"type"`
}
