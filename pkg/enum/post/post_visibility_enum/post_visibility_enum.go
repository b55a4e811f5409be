// Package post_visibility_enum 定义帖子可见性级别
// 可见性独立于群组隐私：PUBLIC 对有权查看信息流的所有人可见；
// CONNECTIONS 面向好友关系（当前信息流过滤中与 PUBLIC 等价，好友图校验未接入）；
// ONLY_ME 仅作者本人可见
package post_visibility_enum

const (
	PUBLIC      int8 = 0 // 公开
	CONNECTIONS int8 = 1 // 好友可见
	ONLY_ME     int8 = 2 // 仅自己可见
)

// Valid 判断是否为合法的可见性级别
func Valid(visibility int8) bool {
	return visibility >= PUBLIC && visibility <= ONLY_ME
}
