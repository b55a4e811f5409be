package request

// CreateInstitutionRequest 创建机构请求（平台管理员）
// 使用位置:
//   - internal/handler/org_handler.go: CreateInstitutionHandler
//   - internal/service/org/service.go: CreateInstitution
type CreateInstitutionRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
	City        string `json:"city"`
	Website     string `json:"website"`
}
