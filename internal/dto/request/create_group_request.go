package request

// CreateGroupRequest 创建群组请求
// 使用位置:
//   - internal/handler/group_handler.go: CreateGroupHandler
//   - internal/service/group/service.go: CreateGroup
type CreateGroupRequest struct {
	Name                string `json:"name" binding:"required,max=100"`
	Description         string `json:"description"`
	Avatar              string `json:"avatar"`
	Privacy             int8   `json:"privacy"`
	Type                int8   `json:"type"`
	InstitutionUuid     string `json:"institution_uuid" binding:"required"`
	AllowMemberPosting  bool   `json:"allow_member_posting"`
	RequirePostApproval bool   `json:"require_post_approval"`
}
