package request

// UpdateDepartmentRequest 更新院系请求
// 指针字段为 nil 表示不修改
// 使用位置:
//   - internal/handler/org_handler.go: UpdateDepartmentHandler
//   - internal/service/org/service.go: UpdateDepartment
type UpdateDepartmentRequest struct {
	DepartmentUuid string  `json:"department_uuid" binding:"required"`
	Name           *string `json:"name"`
	Description    *string `json:"description"`
}
