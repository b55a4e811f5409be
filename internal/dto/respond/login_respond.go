package respond

// LoginRespond 用户登录响应
// 使用位置:
//   - internal/service/auth/service.go: Login, SmsLogin
type LoginRespond struct {
	Uuid            string `json:"uuid"`
	Nickname        string `json:"nickname"`
	Fullname        string `json:"fullname"`
	Telephone       string `json:"telephone"`
	Avatar          string `json:"avatar"`
	Email           string `json:"email"`
	Bio             string `json:"bio"`
	InstitutionUuid string `json:"institution_uuid"`
	DepartmentUuid  string `json:"department_uuid"`
	StudentId       string `json:"student_id"`
	PersonType      int8   `json:"person_type"`
	CreatedAt       string `json:"created_at"`
	IsAdmin         int8   `json:"is_admin"`
	Status          int8   `json:"status"`
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
}
