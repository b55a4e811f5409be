package request

// FollowRequest 关注/取消关注用户请求
// 使用位置:
//   - internal/handler/social_handler.go: FollowHandler, UnfollowHandler
//   - internal/service/social/service.go: Follow, Unfollow
type FollowRequest struct {
	UserUuid string `json:"user_uuid" binding:"required"`
}
