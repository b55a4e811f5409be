package request

// ReadPostRequest 标记帖子已读请求
// 使用位置:
//   - internal/handler/post_handler.go: ReadPostHandler
//   - internal/service/post/service.go: MarkPostRead
type ReadPostRequest struct {
	PostUuid string `json:"post_uuid" binding:"required"`
}
