package respond

// InviteResultItem 单个邀请目标的处理结果
// Result 取值见 invite_result_enum: INVITED / BANNED / ALREADY_ASSOCIATED
type InviteResultItem struct {
	UserUuid string `json:"user_uuid"`
	Result   string `json:"result"`
}

// InviteMembersRespond 批量邀请响应
// 部分目标被跳过属于正常返回，逐个上报结果
// 使用位置:
//   - internal/service/member/service.go: InviteMembers
type InviteMembersRespond struct {
	Results []InviteResultItem `json:"results"`
}
