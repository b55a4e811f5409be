package request

// LikePostRequest 点赞/取消点赞帖子请求
// 使用位置:
//   - internal/handler/post_handler.go: LikePostHandler, UnlikePostHandler
//   - internal/service/post/service.go: LikePost, UnlikePost
type LikePostRequest struct {
	PostUuid string `json:"post_uuid" binding:"required"`
}
