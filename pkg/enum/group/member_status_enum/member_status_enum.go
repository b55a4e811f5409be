// Package member_status_enum 定义群成员关系状态
// 一个用户在一个群中最多只有一条成员记录，状态描述其当前关系：
// JOINED 正式成员；PENDING 已申请待审核；INVITED 已被邀请待确认；
// BANNED 已封禁（记录保留用于阻止再次加入）
package member_status_enum

const (
	JOINED  int8 = 0 // 已加入
	PENDING int8 = 1 // 申请待审核
	INVITED int8 = 2 // 已邀请待确认
	BANNED  int8 = 3 // 已封禁
)
