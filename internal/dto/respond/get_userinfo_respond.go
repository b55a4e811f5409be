package respond

// GetUserInfoRespond 获取用户资料响应
// 使用位置:
//   - internal/service/user/service.go: GetUserInfo
type GetUserInfoRespond struct {
	Uuid            string `json:"uuid"`
	Nickname        string `json:"nickname"`
	Fullname        string `json:"fullname"`
	Avatar          string `json:"avatar"`
	Email           string `json:"email"`
	Bio             string `json:"bio"`
	InstitutionUuid string `json:"institution_uuid"`
	DepartmentUuid  string `json:"department_uuid"`
	StudentId       string `json:"student_id"`
	PersonType      int8   `json:"person_type"`
	CreatedAt       string `json:"created_at"`
}
