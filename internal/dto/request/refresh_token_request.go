package request

// RefreshTokenRequest 刷新 Access Token 请求
// 使用位置:
//   - internal/handler/auth_handler.go: RefreshTokenHandler
//   - internal/service/auth/service.go: RefreshToken
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
