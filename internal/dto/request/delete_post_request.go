package request

// DeletePostRequest 删除帖子请求
// 使用位置:
//   - internal/handler/post_handler.go: DeletePostHandler
//   - internal/service/post/service.go: DeletePost
type DeletePostRequest struct {
	PostUuid string `json:"post_uuid" binding:"required"`
}
