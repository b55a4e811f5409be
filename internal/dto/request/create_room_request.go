package request

// CreateRoomRequest 创建教室请求（平台管理员）
// 使用位置:
//   - internal/handler/org_handler.go: CreateRoomHandler
//   - internal/service/org/service.go: CreateRoom
type CreateRoomRequest struct {
	DepartmentUuid string `json:"department_uuid" binding:"required"`
	Name           string `json:"name" binding:"required,max=200"`
	Building       string `json:"building"`
	Capacity       int    `json:"capacity"`
}
