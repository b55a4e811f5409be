package request

// UpdateRoomRequest 更新教室请求
// 指针字段为 nil 表示不修改
// 使用位置:
//   - internal/handler/org_handler.go: UpdateRoomHandler
//   - internal/service/org/service.go: UpdateRoom
type UpdateRoomRequest struct {
	RoomUuid string  `json:"room_uuid" binding:"required"`
	Name     *string `json:"name"`
	Building *string `json:"building"`
	Capacity *int    `json:"capacity"`
}
