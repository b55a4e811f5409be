package request

// AcceptFriendRequest 接受好友申请请求
// 使用位置:
//   - internal/handler/social_handler.go: AcceptFriendHandler
//   - internal/service/social/service.go: AcceptFriend
type AcceptFriendRequest struct {
	UserUuid string `json:"user_uuid" binding:"required"`
}
