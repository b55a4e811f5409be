package request

// GetOrgListRequest 获取机构/院系/教室列表请求
// ParentUuid 查机构列表时留空，查院系列表时传机构 uuid，查教室列表时传院系 uuid
// 使用位置:
//   - internal/handler/org_handler.go: GetInstitutionListHandler, GetDepartmentListHandler, GetRoomListHandler
//   - internal/service/org/service.go: GetInstitutionList, GetDepartmentList, GetRoomList
type GetOrgListRequest struct {
	ParentUuid string `form:"parent_uuid"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}
