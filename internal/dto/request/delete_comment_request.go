package request

// DeleteCommentRequest 删除评论请求
// 使用位置:
//   - internal/handler/comment_handler.go: DeleteCommentHandler
//   - internal/service/comment/service.go: DeleteComment
type DeleteCommentRequest struct {
	CommentUuid string `json:"comment_uuid" binding:"required"`
}
