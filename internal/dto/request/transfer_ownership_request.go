package request

// TransferOwnershipRequest 转让群主请求
// 使用位置:
//   - internal/handler/member_handler.go: TransferOwnershipHandler
//   - internal/service/member/service.go: TransferOwnership
type TransferOwnershipRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
	UserUuid  string `json:"user_uuid" binding:"required"`
}
