// Package group_privacy_enum 定义群组隐私级别
package group_privacy_enum

// 群组隐私级别
// PUBLIC 任何人可直接加入；PRIVATE 需申请由管理员审核；CLOSED 仅限邀请
const (
	PUBLIC  int8 = 0 // 公开群
	PRIVATE int8 = 1 // 私密群（申请加入）
	CLOSED  int8 = 2 // 封闭群（仅邀请）
)

// Valid 判断是否为合法的隐私级别
func Valid(privacy int8) bool {
	return privacy >= PUBLIC && privacy <= CLOSED
}
