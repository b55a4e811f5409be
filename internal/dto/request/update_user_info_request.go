package request

// UpdateUserInfoRequest 更新用户资料请求
// 使用位置:
//   - internal/handler/user_handler.go: UpdateUserInfoHandler
//   - internal/service/user/service.go: UpdateUserInfo
type UpdateUserInfoRequest struct {
	Nickname       string `json:"nickname"`
	Fullname       string `json:"fullname"`
	Avatar         string `json:"avatar"`
	Bio            string `json:"bio"`
	Email          string `json:"email"`
	DepartmentUuid string `json:"department_uuid"`
	StudentId      string `json:"student_id"`
}
