// Package auth 实现认证业务逻辑
// 注册和短信登录依赖 Redis 中的短信验证码；
// Refresh Token 的 tokenID 存入 Redis 实现轮换和吊销，
// 新登录会覆盖旧的 tokenID，旧 Refresh Token 随即失效（单点互踢）
package auth

import (
	"context"
	"time"

	"campus_hub_server/internal/dao/mysql/repository"
	myredis "campus_hub_server/internal/dao/redis"
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/dto/respond"
	"campus_hub_server/internal/infrastructure/sms"
	"campus_hub_server/internal/model"
	"campus_hub_server/pkg/constants"
	"campus_hub_server/pkg/errorx"
	"campus_hub_server/pkg/util/jwt"
	"campus_hub_server/pkg/util/random"
)

const (
	authCodeKeyPrefix     = "auth_code_"
	refreshTokenKeyPrefix = "refresh_token_"
)

// authService 认证业务逻辑实现
type authService struct {
	repos      *repository.Repositories
	cache      myredis.AsyncCacheService
	smsService sms.SmsService
}

// NewAuthService 构造函数
func NewAuthService(repos *repository.Repositories, cache myredis.AsyncCacheService, smsService sms.SmsService) *authService {
	return &authService{
		repos:      repos,
		cache:      cache,
		smsService: smsService,
	}
}

// verifySmsCode 校验短信验证码，校验通过后立即删除防止重放
func (a *authService) verifySmsCode(telephone, code string) error {
	key := authCodeKeyPrefix + telephone
	stored, err := a.cache.GetOrError(context.Background(), key)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeInvalidParam, "验证码已过期，请重新获取")
		}
		return err
	}
	if stored != code {
		return errorx.New(errorx.CodeInvalidParam, "验证码错误")
	}
	return a.cache.Delete(context.Background(), key)
}

// storeRefreshToken 记录用户当前有效的 Refresh Token ID
func (a *authService) storeRefreshToken(userUuid, tokenID string) error {
	return a.cache.Set(context.Background(), refreshTokenKeyPrefix+userUuid, tokenID,
		constants.REFRESH_TOKEN_EXPIRY_HOURS*time.Hour)
}

// issueTokens 签发令牌对并登记 Refresh Token
func (a *authService) issueTokens(userUuid string) (accessToken, refreshToken string, err error) {
	accessToken, err = jwt.GenerateAccessToken(userUuid)
	if err != nil {
		return "", "", errorx.Wrap(err, errorx.CodeServerBusy, "生成令牌失败")
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(userUuid)
	if err != nil {
		return "", "", errorx.Wrap(err, errorx.CodeServerBusy, "生成令牌失败")
	}
	if err := a.storeRefreshToken(userUuid, tokenID); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ==================== 注册 ====================

// Register 用户注册
// 需要短信验证码，手机号唯一，密码由模型层 Hook 自动加密
func (a *authService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if err := a.verifySmsCode(req.Telephone, req.SmsCode); err != nil {
		return nil, err
	}
	if _, err := a.repos.User.FindByTelephone(req.Telephone); err == nil {
		return nil, errorx.New(errorx.CodeConflict, "该手机号已注册")
	} else if !errorx.IsNotFound(err) {
		return nil, err
	}
	if _, err := a.repos.Institution.FindByUuid(req.InstitutionUuid); err != nil {
		return nil, err
	}

	user := &model.UserInfo{
		Uuid:            "U" + random.GetNowAndLenRandomString(11),
		Nickname:        req.Nickname,
		Fullname:        req.Fullname,
		Telephone:       req.Telephone,
		InstitutionUuid: req.InstitutionUuid,
		DepartmentUuid:  req.DepartmentUuid,
		StudentId:       req.StudentId,
		PersonType:      req.PersonType,
		RawPassword:     req.Password,
	}
	if err := a.repos.User.Create(user); err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := a.issueTokens(user.Uuid)
	if err != nil {
		return nil, err
	}
	return &respond.RegisterRespond{
		Uuid:            user.Uuid,
		Nickname:        user.Nickname,
		Telephone:       user.Telephone,
		Avatar:          user.Avatar,
		InstitutionUuid: user.InstitutionUuid,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
	}, nil
}

// ==================== 登录 ====================

// Login 密码登录
func (a *authService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := a.repos.User.FindByTelephone(req.Telephone)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeInvalidParam, "手机号或密码错误")
		}
		return nil, err
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidParam, "手机号或密码错误")
	}
	return a.buildLoginRespond(user)
}

// SmsLogin 短信验证码登录（须已注册）
func (a *authService) SmsLogin(req request.SmsLoginRequest) (*respond.LoginRespond, error) {
	if err := a.verifySmsCode(req.Telephone, req.SmsCode); err != nil {
		return nil, err
	}
	user, err := a.repos.User.FindByTelephone(req.Telephone)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "该手机号尚未注册")
		}
		return nil, err
	}
	return a.buildLoginRespond(user)
}

// buildLoginRespond 校验账号状态并签发令牌
func (a *authService) buildLoginRespond(user *model.UserInfo) (*respond.LoginRespond, error) {
	if user.Status != 0 {
		return nil, errorx.New(errorx.CodeForbidden, "账号已被禁用")
	}
	accessToken, refreshToken, err := a.issueTokens(user.Uuid)
	if err != nil {
		return nil, err
	}
	return &respond.LoginRespond{
		Uuid:            user.Uuid,
		Nickname:        user.Nickname,
		Fullname:        user.Fullname,
		Telephone:       user.Telephone,
		Avatar:          user.Avatar,
		Email:           user.Email,
		Bio:             user.Bio,
		InstitutionUuid: user.InstitutionUuid,
		DepartmentUuid:  user.DepartmentUuid,
		StudentId:       user.StudentId,
		PersonType:      user.PersonType,
		CreatedAt:       user.CreatedAt.Format("2006-01-02 15:04:05"),
		IsAdmin:         user.IsAdmin,
		Status:          user.Status,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
	}, nil
}

// ==================== 令牌 ====================

// SendSmsCode 发送短信验证码
func (a *authService) SendSmsCode(telephone string) error {
	return a.smsService.SendVerificationCode(telephone)
}

// RefreshToken 用 Refresh Token 换取新令牌对
// 校验 tokenID 与 Redis 中登记的一致后轮换，旧 Refresh Token 作废
func (a *authService) RefreshToken(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error) {
	claims, err := jwt.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, errorx.New(errorx.CodeUnauthorized, "无效的刷新令牌")
	}
	if claims.Subject != "refresh_token" || claims.TokenID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "无效的刷新令牌")
	}

	stored, err := a.cache.GetOrError(context.Background(), refreshTokenKeyPrefix+claims.UserID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUnauthorized, "刷新令牌已失效，请重新登录")
		}
		return nil, err
	}
	if stored != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "刷新令牌已失效，请重新登录")
	}

	accessToken, refreshToken, err := a.issueTokens(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &respond.RefreshTokenRespond{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout 退出登录，删除登记的 Refresh Token
func (a *authService) Logout(userUuid string) error {
	return a.cache.Delete(context.Background(), refreshTokenKeyPrefix+userUuid)
}
