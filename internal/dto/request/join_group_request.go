package request

// JoinGroupRequest 申请加入群组请求
// 公开群直接加入，私密群进入待审核状态
// 使用位置:
//   - internal/handler/member_handler.go: JoinGroupHandler
//   - internal/service/member/service.go: JoinGroup
type JoinGroupRequest struct {
	GroupUuid string `json:"group_uuid" binding:"required"`
}
