package request

// SavePostRequest 收藏/取消收藏帖子请求
// 使用位置:
//   - internal/handler/post_handler.go: SavePostHandler, UnsavePostHandler
//   - internal/service/post/service.go: SavePost, UnsavePost
type SavePostRequest struct {
	PostUuid string `json:"post_uuid" binding:"required"`
}
