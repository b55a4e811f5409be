package request

// PinPostRequest 置顶/取消置顶帖子请求
// 使用位置:
//   - internal/handler/post_handler.go: PinPostHandler
//   - internal/service/post/service.go: PinPost
type PinPostRequest struct {
	PostUuid string `json:"post_uuid" binding:"required"`
	Pinned   bool   `json:"pinned"`
}
