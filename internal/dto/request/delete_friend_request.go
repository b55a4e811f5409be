package request

// DeleteFriendRequest 解除好友关系请求
// 使用位置:
//   - internal/handler/social_handler.go: DeleteFriendHandler
//   - internal/service/social/service.go: DeleteFriend
type DeleteFriendRequest struct {
	UserUuid string `json:"user_uuid" binding:"required"`
}
