package request

// CreateCommentRequest 发表评论请求
// 使用位置:
//   - internal/handler/comment_handler.go: CreateCommentHandler
//   - internal/service/comment/service.go: CreateComment
type CreateCommentRequest struct {
	PostUuid string `json:"post_uuid" binding:"required"`
	Content  string `json:"content" binding:"required,max=1000"`
}
