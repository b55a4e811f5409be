package request

// RejectFriendRequest 拒绝好友申请请求
// 使用位置:
//   - internal/handler/social_handler.go: RejectFriendHandler
//   - internal/service/social/service.go: RejectFriend
type RejectFriendRequest struct {
	UserUuid string `json:"user_uuid" binding:"required"`
}
