// Package notification_type_enum 定义通知类型
package notification_type_enum

const (
	MEMBER_JOINED    int8 = 0 // 有成员加入群组
	JOIN_REQUEST     int8 = 1 // 收到入群申请
	REQUEST_ACCEPTED int8 = 2 // 入群申请已通过
	GROUP_INVITE     int8 = 3 // 收到入群邀请
	ROLE_CHANGED     int8 = 4 // 群内角色变更
	POST_LIKED       int8 = 5 // 帖子被点赞
	COMMENT_ADDED    int8 = 6 // 帖子被评论
	FRIEND_REQUEST   int8 = 7 // 收到好友申请
	FRIEND_ACCEPTED  int8 = 8 // 好友申请已通过
)
