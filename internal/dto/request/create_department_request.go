package request

// CreateDepartmentRequest 创建院系请求（平台管理员）
// 使用位置:
//   - internal/handler/org_handler.go: CreateDepartmentHandler
//   - internal/service/org/service.go: CreateDepartment
type CreateDepartmentRequest struct {
	InstitutionUuid string `json:"institution_uuid" binding:"required"`
	Name            string `json:"name" binding:"required,max=200"`
	Description     string `json:"description"`
}
