package request

// GetCommentListRequest 获取帖子评论列表请求
// 使用位置:
//   - internal/handler/comment_handler.go: GetCommentListHandler
//   - internal/service/comment/service.go: GetCommentList
type GetCommentListRequest struct {
	PostUuid string `form:"post_uuid" binding:"required"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
