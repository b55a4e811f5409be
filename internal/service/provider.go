// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"campus_hub_server/internal/dao/mysql/repository"
	myredis "campus_hub_server/internal/dao/redis"
	"campus_hub_server/internal/infrastructure/mq"
	"campus_hub_server/internal/infrastructure/sms"
	"campus_hub_server/internal/service/auth"
	"campus_hub_server/internal/service/comment"
	"campus_hub_server/internal/service/group"
	"campus_hub_server/internal/service/member"
	"campus_hub_server/internal/service/notification"
	"campus_hub_server/internal/service/org"
	"campus_hub_server/internal/service/post"
	"campus_hub_server/internal/service/search"
	"campus_hub_server/internal/service/social"
	"campus_hub_server/internal/service/user"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	Auth         AuthService         // 认证 Service
	User         UserService         // 用户 Service
	Group        GroupService        // 群组 Service
	Member       MemberService       // 群成员 Service
	Post         PostService         // 帖子 Service
	Comment      CommentService      // 评论 Service
	Social       SocialService       // 社交关系 Service
	Org          OrgService          // 组织目录 Service
	Search       SearchService       // 搜索 Service
	Notification NotificationService // 通知 Service
}

// NewServices 创建并注入所有 Service 实例
// 依赖注入流程：
//  1. 接收 Repository、缓存、短信、事件发布器实例
//  2. 创建各个 Service 实例，注入依赖
//  3. 返回 Services 聚合
func NewServices(
	repos *repository.Repositories,
	cache myredis.AsyncCacheService,
	smsService sms.SmsService,
	publisher mq.EventPublisher,
) *Services {
	socialSvc := social.NewSocialService(repos, publisher)

	return &Services{
		Auth:         auth.NewAuthService(repos, cache, smsService),
		User:         user.NewUserService(repos),
		Group:        group.NewGroupService(repos, cache),
		Member:       member.NewMemberService(repos, cache, publisher),
		Post:         post.NewPostService(repos, cache, publisher, socialSvc),
		Comment:      comment.NewCommentService(repos, publisher),
		Social:       socialSvc,
		Org:          org.NewOrgService(repos),
		Search:       search.NewSearchService(repos, cache),
		Notification: notification.NewNotificationService(repos),
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.Member.JoinGroup() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository/Redis/SMS/MQ 初始化之后
func InitServices(
	repos *repository.Repositories,
	cache myredis.AsyncCacheService,
	smsService sms.SmsService,
	publisher mq.EventPublisher,
) {
	Svc = NewServices(repos, cache, smsService, publisher)
}
