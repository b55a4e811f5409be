// Package group_type_enum 定义群组类型
package group_type_enum

const (
	GENERAL  int8 = 0 // 普通群组
	OFFICIAL int8 = 1 // 官方群组（院系/社团认证）
	JOBS     int8 = 2 // 招聘/求职群组
)

// Valid 判断是否为合法的群组类型
func Valid(groupType int8) bool {
	return groupType >= GENERAL && groupType <= JOBS
}
