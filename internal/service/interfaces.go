// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/dto/respond"
)

// AuthService 认证业务接口
// 处理注册、登录、令牌刷新等功能
type AuthService interface {
	// Register 用户注册（需短信验证码）
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 密码登录
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// SmsLogin 短信验证码登录
	SmsLogin(req request.SmsLoginRequest) (*respond.LoginRespond, error)
	// SendSmsCode 发送短信验证码
	SendSmsCode(telephone string) error
	// RefreshToken 用 Refresh Token 换取新的令牌对
	RefreshToken(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error)
	// Logout 退出登录，吊销 Refresh Token
	Logout(userUuid string) error
}

// UserService 用户业务接口
type UserService interface {
	// GetUserInfo 获取用户资料
	GetUserInfo(uuid string) (*respond.GetUserInfoRespond, error)
	// UpdateUserInfo 更新当前用户资料
	UpdateUserInfo(userUuid string, req request.UpdateUserInfoRequest) error
}

// GroupService 群组生命周期业务接口
type GroupService interface {
	// CreateGroup 创建群组，创建者自动成为群主
	CreateGroup(creatorUuid string, req request.CreateGroupRequest) (*respond.GetGroupInfoRespond, error)
	// UpdateGroup 更新群组信息（管理员以上）
	UpdateGroup(actorUuid string, req request.UpdateGroupRequest) error
	// DeleteGroup 删除群组（仅群主），级联软删除成员、帖子和评论
	DeleteGroup(actorUuid, groupUuid string) error
	// GetGroupInfo 获取群组信息，附带查看者视角元信息
	GetGroupInfo(viewerUuid, groupUuid string) (*respond.GetGroupInfoRespond, error)
	// GetGroupList 分页获取机构下的群组列表
	GetGroupList(req request.GetGroupListRequest) (*respond.GetGroupListRespond, error)
	// GetMyGroups 获取当前用户已加入的群组
	GetMyGroups(userUuid string) ([]respond.GroupSummary, error)
}

// MemberService 群成员关系业务接口
// 成员关系状态机：JOINED/PENDING/INVITED/BANNED，一个用户在一个群中最多一条记录
type MemberService interface {
	// JoinGroup 加入群组：公开群直接加入，私密群进入待审核，封闭群拒绝
	JoinGroup(userUuid, groupUuid string) error
	// CancelJoin 撤回入群申请（仅 PENDING）
	CancelJoin(userUuid, groupUuid string) error
	// AcceptMember 批准入群申请（管理员以上）
	AcceptMember(actorUuid, groupUuid, targetUuid string) error
	// RejectMember 拒绝入群申请（管理员以上）
	RejectMember(actorUuid, groupUuid, targetUuid string) error
	// InviteMembers 批量邀请用户，逐个返回处理结果
	InviteMembers(actorUuid string, req request.InviteMembersRequest) (*respond.InviteMembersRespond, error)
	// AcceptInvite 接受入群邀请
	AcceptInvite(userUuid, groupUuid string) error
	// RejectInvite 拒绝入群邀请
	RejectInvite(userUuid, groupUuid string) error
	// LeaveGroup 退出群组，群主不可退出（需先转让）
	LeaveGroup(userUuid, groupUuid string) error
	// RemoveMember 移除成员（管理员以上，且须严格高于目标角色）
	RemoveMember(actorUuid, groupUuid, targetUuid string) error
	// ChangeRole 变更成员角色（仅群主，一次升降一级，OWNER 不可通过此接口授予）
	ChangeRole(actorUuid string, req request.ChangeRoleRequest) error
	// TransferOwnership 转让群主（仅群主，目标须为管理员）
	TransferOwnership(actorUuid, groupUuid, targetUuid string) error
	// BanMember 封禁成员（协管员以上，且须严格高于目标角色）
	BanMember(actorUuid, groupUuid, targetUuid string) error
	// UnbanMember 解除封禁，解除后可重新申请加入
	UnbanMember(actorUuid, groupUuid, targetUuid string) error
	// GetMemberList 获取已加入成员列表
	GetMemberList(req request.GetMemberListRequest) (*respond.GetGroupMemberListRespond, error)
	// GetJoinRequestList 获取待审核申请列表（协管员以上）
	GetJoinRequestList(actorUuid string, req request.GetJoinRequestListRequest) (*respond.GetJoinRequestListRespond, error)
}

// PostService 帖子业务接口
// 信息流统一经过可见性过滤器，按查看者身份决定可见范围
type PostService interface {
	// CreatePost 发布帖子，受群组发帖策略约束
	CreatePost(authorUuid string, req request.CreatePostRequest) (*respond.PostRespond, error)
	// UpdatePost 编辑帖子（仅作者）
	UpdatePost(actorUuid string, req request.UpdatePostRequest) error
	// DeletePost 删除帖子（作者或管理员以上）
	DeletePost(actorUuid, postUuid string) error
	// PinPost 置顶/取消置顶（协管员以上）
	PinPost(actorUuid string, req request.PinPostRequest) error
	// ApprovePost 审核通过帖子（协管员以上）
	ApprovePost(actorUuid, postUuid string) error
	// LikePost 点赞帖子
	LikePost(userUuid, postUuid string) error
	// UnlikePost 取消点赞
	UnlikePost(userUuid, postUuid string) error
	// SavePost 收藏帖子
	SavePost(userUuid, postUuid string) error
	// UnsavePost 取消收藏
	UnsavePost(userUuid, postUuid string) error
	// MarkPostRead 标记帖子已读（幂等）
	MarkPostRead(userUuid, postUuid string) error
	// GetPost 获取单个帖子（带查看者元信息）
	GetPost(viewerUuid, postUuid string) (*respond.PostRespond, error)
	// GetFeed 获取群组信息流
	GetFeed(viewerUuid string, req request.GetFeedRequest) (*respond.GetFeedRespond, error)
	// GetPinnedFeed 获取置顶信息流
	GetPinnedFeed(viewerUuid string, req request.GetFeedRequest) (*respond.GetFeedRespond, error)
	// GetMarketplaceFeed 获取集市（交易帖）信息流
	GetMarketplaceFeed(viewerUuid string, req request.GetFeedRequest) (*respond.GetFeedRespond, error)
}

// CommentService 评论业务接口
type CommentService interface {
	// CreateComment 发表评论
	CreateComment(authorUuid string, req request.CreateCommentRequest) (*respond.CommentRespond, error)
	// DeleteComment 删除评论（作者、帖子作者或协管员以上）
	DeleteComment(actorUuid, commentUuid string) error
	// GetCommentList 获取帖子评论列表（最早在前）
	GetCommentList(viewerUuid string, req request.GetCommentListRequest) (*respond.GetCommentListRespond, error)
}

// SocialService 社交关系业务接口（关注 + 好友）
type SocialService interface {
	// Follow 关注用户
	Follow(userUuid, targetUuid string) error
	// Unfollow 取消关注
	Unfollow(userUuid, targetUuid string) error
	// GetFollowers 获取粉丝列表
	GetFollowers(req request.GetSocialListRequest) (*respond.GetSocialListRespond, error)
	// GetFollowing 获取关注列表
	GetFollowing(req request.GetSocialListRequest) (*respond.GetSocialListRespond, error)
	// ApplyFriend 发起好友申请
	ApplyFriend(userUuid, targetUuid string) error
	// AcceptFriend 接受好友申请
	AcceptFriend(userUuid, requesterUuid string) error
	// RejectFriend 拒绝好友申请
	RejectFriend(userUuid, requesterUuid string) error
	// DeleteFriend 解除好友关系
	DeleteFriend(userUuid, targetUuid string) error
	// GetFriendList 获取好友列表
	GetFriendList(userUuid string, req request.GetSocialListRequest) (*respond.GetSocialListRespond, error)
	// GetFriendRequestList 获取待处理好友申请列表
	GetFriendRequestList(userUuid string) (*respond.GetFriendRequestListRespond, error)
	// AreFriends 判断两人是否为好友
	AreFriends(userA, userB string) (bool, error)
}

// OrgService 组织目录业务接口（机构/院系/教室）
type OrgService interface {
	// CreateInstitution 创建机构（平台管理员）
	CreateInstitution(actorUuid string, req request.CreateInstitutionRequest) (*respond.InstitutionRespond, error)
	// CreateDepartment 创建院系（平台管理员）
	CreateDepartment(actorUuid string, req request.CreateDepartmentRequest) (*respond.DepartmentRespond, error)
	// CreateRoom 创建教室（平台管理员）
	CreateRoom(actorUuid string, req request.CreateRoomRequest) (*respond.RoomRespond, error)
	// UpdateInstitution 更新机构信息（平台管理员）
	UpdateInstitution(actorUuid string, req request.UpdateInstitutionRequest) error
	// UpdateDepartment 更新院系信息（平台管理员）
	UpdateDepartment(actorUuid string, req request.UpdateDepartmentRequest) error
	// UpdateRoom 更新教室信息（平台管理员）
	UpdateRoom(actorUuid string, req request.UpdateRoomRequest) error
	// GetInstitution 获取机构详情
	GetInstitution(uuid string) (*respond.InstitutionRespond, error)
	// GetInstitutionList 获取机构列表
	GetInstitutionList(req request.GetOrgListRequest) (*respond.GetInstitutionListRespond, error)
	// GetDepartmentList 获取机构下的院系列表
	GetDepartmentList(req request.GetOrgListRequest) (*respond.GetDepartmentListRespond, error)
	// GetRoomList 获取院系下的教室列表
	GetRoomList(req request.GetOrgListRequest) (*respond.GetRoomListRespond, error)
}

// SearchService 全局搜索业务接口
type SearchService interface {
	// Search 按关键词搜索用户/群组/帖子，结果带短时缓存
	Search(req request.SearchRequest) (*respond.SearchRespond, error)
}

// NotificationService 通知业务接口
type NotificationService interface {
	// GetNotificationList 分页获取通知列表
	GetNotificationList(userUuid string, req request.GetNotificationListRequest) (*respond.GetNotificationListRespond, error)
	// MarkRead 标记通知已读，uuid 为空时标记全部
	MarkRead(userUuid string, req request.MarkNotificationReadRequest) error
}
