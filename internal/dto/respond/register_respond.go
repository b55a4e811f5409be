package respond

// RegisterRespond 用户注册响应
// 使用位置:
//   - internal/service/auth/service.go: Register
type RegisterRespond struct {
	Uuid            string `json:"uuid"`
	Nickname        string `json:"nickname"`
	Telephone       string `json:"telephone"`
	Avatar          string `json:"avatar"`
	InstitutionUuid string `json:"institution_uuid"`
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
}
