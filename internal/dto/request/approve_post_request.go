package request

// ApprovePostRequest 审核通过帖子请求
// 使用位置:
//   - internal/handler/post_handler.go: ApprovePostHandler
//   - internal/service/post/service.go: ApprovePost
type ApprovePostRequest struct {
	PostUuid string `json:"post_uuid" binding:"required"`
}
