// Package post_type_enum 定义帖子类型
package post_type_enum

const (
	NORMAL   int8 = 0 // 普通帖子
	BUY_SELL int8 = 1 // 二手/交易帖（集市）
)

// Valid 判断是否为合法的帖子类型
func Valid(postType int8) bool {
	return postType >= NORMAL && postType <= BUY_SELL
}
