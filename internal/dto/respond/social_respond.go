package respond

// SocialUserItem 社交列表中的用户摘要
// 关注/粉丝/好友三个列表共用
type SocialUserItem struct {
	Uuid     string `json:"uuid"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}

// GetSocialListRespond 关注/粉丝/好友列表响应
// 使用位置:
//   - internal/service/social/service.go: GetFollowers, GetFollowing, GetFriendList
type GetSocialListRespond struct {
	Users      []SocialUserItem `json:"users"`
	Pagination Pagination       `json:"pagination"`
}

// FriendRequestItem 待处理好友申请列表项
type FriendRequestItem struct {
	Uuid      string `json:"uuid"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	AppliedAt string `json:"applied_at"`
}

// GetFriendRequestListRespond 待处理好友申请列表响应
// 使用位置:
//   - internal/service/social/service.go: GetFriendRequestList
type GetFriendRequestListRespond struct {
	Requests []FriendRequestItem `json:"requests"`
}
