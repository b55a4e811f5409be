package request

// GetSocialListRequest 获取关注/粉丝/好友列表请求
// 三个列表接口共用，UserUuid 为空时默认查当前登录用户
// 使用位置:
//   - internal/handler/social_handler.go: GetFollowersHandler, GetFollowingHandler, GetFriendListHandler
//   - internal/service/social/service.go: GetFollowers, GetFollowing, GetFriendList
type GetSocialListRequest struct {
	UserUuid string `form:"user_uuid"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
