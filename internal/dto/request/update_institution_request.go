package request

// UpdateInstitutionRequest 更新机构请求
// 指针字段为 nil 表示不修改
// 使用位置:
//   - internal/handler/org_handler.go: UpdateInstitutionHandler
//   - internal/service/org/service.go: UpdateInstitution
type UpdateInstitutionRequest struct {
	InstitutionUuid string  `json:"institution_uuid" binding:"required"`
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	City            *string `json:"city"`
	Website         *string `json:"website"`
}
