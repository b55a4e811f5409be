package request

// UpdateGroupRequest 更新群组信息请求
// 指针字段区分"未提交"和"提交了零值"
// 使用位置:
//   - internal/handler/group_handler.go: UpdateGroupHandler
//   - internal/service/group/service.go: UpdateGroup
type UpdateGroupRequest struct {
	GroupUuid           string  `json:"group_uuid" binding:"required"`
	Name                *string `json:"name"`
	Description         *string `json:"description"`
	Avatar              *string `json:"avatar"`
	Privacy             *int8   `json:"privacy"`
	AllowMemberPosting  *bool   `json:"allow_member_posting"`
	RequirePostApproval *bool   `json:"require_post_approval"`
}
