package request

// ApplyFriendRequest 发起好友申请请求
// 使用位置:
//   - internal/handler/social_handler.go: ApplyFriendHandler
//   - internal/service/social/service.go: ApplyFriend
type ApplyFriendRequest struct {
	UserUuid string `json:"user_uuid" binding:"required"`
}
