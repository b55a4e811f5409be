package request

// DeleteGroupRequest 删除群组请求
// 使用位置:
//   - internal/handler/group_handler.go: DeleteGroupHandler
//   - internal/service/group/service.go: DeleteGroup
type DeleteGroupRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
}
