package request

// ChangeRoleRequest 变更成员角色请求（晋升/降级）
// Role 取值见 group_role_enum，OWNER 不能通过此接口授予
// 使用位置:
//   - internal/handler/member_handler.go: ChangeRoleHandler
//   - internal/service/member/service.go: ChangeRole
type ChangeRoleRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
	UserUuid  string `json:"user_uuid" binding:"required"`
	Role      int8   `json:"role" binding:"required"`
}
