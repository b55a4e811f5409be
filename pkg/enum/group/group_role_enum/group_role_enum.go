// Package group_role_enum 定义群成员角色及其权限全序
// 角色之间存在严格的权限大小关系：OWNER > ADMIN > MODERATOR > MEMBER
// 所有需要比较权限的操作（封禁、移除等）统一通过 Outranks/AtLeast 比较，
// 不允许各业务各自维护一份数字映射
package group_role_enum

// 群成员角色，数值即权限等级，越大权限越高
const (
	MEMBER    int8 = 1 // 普通成员
	MODERATOR int8 = 2 // 协管员
	ADMIN     int8 = 3 // 管理员
	OWNER     int8 = 4 // 群主
)

// Valid 检查角色取值是否合法
func Valid(role int8) bool {
	return role >= MEMBER && role <= OWNER
}

// Outranks 判断 a 的权限是否严格高于 b
func Outranks(a, b int8) bool {
	return a > b
}

// AtLeast 判断角色权限是否不低于给定等级
func AtLeast(role, min int8) bool {
	return role >= min
}

// Label 返回角色的展示名称
func Label(role int8) string {
	switch role {
	case OWNER:
		return "owner"
	case ADMIN:
		return "admin"
	case MODERATOR:
		return "moderator"
	case MEMBER:
		return "member"
	default:
		return "unknown"
	}
}
