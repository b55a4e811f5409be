// Package friend_status_enum 定义好友关系状态
package friend_status_enum

const (
	PENDING  int8 = 0 // 已申请待确认
	ACCEPTED int8 = 1 // 已成为好友
)
