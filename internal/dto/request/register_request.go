package request

// RegisterRequest 用户注册请求
// 使用位置:
//   - internal/handler/auth_handler.go: RegisterHandler
//   - internal/service/auth/service.go: Register
type RegisterRequest struct {
	Telephone       string `json:"telephone" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	Nickname        string `json:"nickname" binding:"required"`
	Fullname        string `json:"fullname"`
	SmsCode         string `json:"sms_code" binding:"required,len=6"`
	InstitutionUuid string `json:"institution_uuid" binding:"required"`
	DepartmentUuid  string `json:"department_uuid"`
	StudentId       string `json:"student_id"`
	PersonType      int8   `json:"person_type"`
}
