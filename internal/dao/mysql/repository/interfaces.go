// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"campus_hub_server/internal/model"

	"gorm.io/gorm"
)

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByUuid 根据 UUID 查找用户
	FindByUuid(uuid string) (*model.UserInfo, error)
	// FindByTelephone 根据手机号查找用户
	FindByTelephone(telephone string) (*model.UserInfo, error)
	// FindByUuids 批量根据 UUID 查找用户
	FindByUuids(uuids []string) ([]model.UserInfo, error)
	// Create 创建新用户
	Create(user *model.UserInfo) error
	// UpdateUserInfo 更新用户信息
	UpdateUserInfo(user *model.UserInfo) error
	// SearchByKeyword 按昵称/姓名/学号模糊搜索（分页）
	SearchByKeyword(keyword string, page, pageSize int) ([]model.UserInfo, int64, error)
}

// GroupRepository 群组数据访问接口
type GroupRepository interface {
	// FindByUuid 根据 UUID 查找群组（软删除的视为不存在）
	FindByUuid(uuid string) (*model.GroupInfo, error)
	// FindBySlug 根据机构内 slug 查找群组（用于 slug 去重）
	FindBySlug(institutionUuid, slug string) (*model.GroupInfo, error)
	// FindByOwnerId 根据群主 ID 查找群组
	FindByOwnerId(ownerId string) ([]model.GroupInfo, error)
	// GetGroupList 分页获取机构下的群组列表
	GetGroupList(institutionUuid string, page, pageSize int) ([]model.GroupInfo, int64, error)
	// Create 创建新群组
	Create(group *model.GroupInfo) error
	// Update 更新群组信息
	Update(group *model.GroupInfo) error
	// IncrementMemberCount 增加群成员数量（+1）
	IncrementMemberCount(uuid string) error
	// DecrementMemberCount 减少群成员数量（-1）
	DecrementMemberCount(uuid string) error
	// IncrementPostCount 增加帖子数量（+1）
	IncrementPostCount(uuid string) error
	// DecrementPostCount 减少帖子数量（-1）
	DecrementPostCount(uuid string) error
	// SoftDelete 软删除群组
	SoftDelete(uuid string) error
	// SearchByKeyword 按名称/简介模糊搜索（分页）
	SearchByKeyword(keyword string, page, pageSize int) ([]model.GroupInfo, int64, error)
}

// GroupMemberRepository 群成员数据访问接口
// 成员关系是权限判定的唯一事实来源
type GroupMemberRepository interface {
	// FindByGroupAndUser 根据群组和用户查找成员记录（任意状态）
	FindByGroupAndUser(groupUuid, userUuid string) (*model.GroupMember, error)
	// FindByGroupAndStatus 分页查找指定状态的成员
	FindByGroupAndStatus(groupUuid string, status int8, page, pageSize int) ([]model.GroupMember, int64, error)
	// FindJoinedByUser 查找用户已加入的所有群成员记录
	FindJoinedByUser(userUuid string) ([]model.GroupMember, error)
	// Create 创建成员记录
	Create(member *model.GroupMember) error
	// UpdateRole 更新成员角色
	UpdateRole(groupUuid, userUuid string, role int8) error
	// UpdateStatus 更新成员状态
	UpdateStatus(groupUuid, userUuid string, status int8) error
	// Delete 硬删除成员记录（退群/拒绝/移除时使用）
	Delete(groupUuid, userUuid string) error
	// SoftDeleteByGroupUuid 软删除群组全部成员记录（群组删除级联）
	SoftDeleteByGroupUuid(groupUuid string) error
	// FindMembersWithUserInfo 查找已加入成员详情（含用户资料，分页）
	FindMembersWithUserInfo(groupUuid string, page, pageSize int) ([]GroupMemberWithUserInfo, int64, error)
}

// FeedFilter 信息流查询条件
// 由 Service 层的可见性过滤器组装，Repository 负责翻译为查询谓词
type FeedFilter struct {
	GroupUuid     string // 群组范围
	ViewerUuid    string // 查看者（自己的 ONLY_ME/未审核帖子可见）
	MemberView    bool   // 已加入成员视角：可见 PUBLIC 和 CONNECTIONS
	ModeratorView bool   // 协管员以上视角：可见未审核帖子
	PinnedOnly    bool   // 仅置顶帖
	BuySellOnly   bool   // 仅交易帖（集市）
	Page          int
	PageSize      int
}

// PostRepository 帖子数据访问接口
type PostRepository interface {
	// FindByUuid 根据 UUID 查找帖子
	FindByUuid(uuid string) (*model.Post, error)
	// FindFeed 按过滤条件分页查找帖子（最新在前）
	FindFeed(filter FeedFilter) ([]model.Post, int64, error)
	// FindUuidsByGroupUuid 查找群组下所有未删除帖子的 UUID（级联删除用）
	FindUuidsByGroupUuid(groupUuid string) ([]string, error)
	// Create 创建帖子
	Create(post *model.Post) error
	// Update 更新帖子
	Update(post *model.Post) error
	// SetPinned 设置/取消置顶
	SetPinned(uuid string, pinned bool) error
	// SetApproved 审核通过
	SetApproved(uuid string, approved bool) error
	// IncrementLikeCount 点赞数 +1/-1
	IncrementLikeCount(uuid string, delta int) error
	// IncrementCommentCount 评论数 +1/-1
	IncrementCommentCount(uuid string, delta int) error
	// SoftDelete 软删除帖子
	SoftDelete(uuid string) error
	// SoftDeleteByUuids 批量软删除帖子（群组删除级联）
	SoftDeleteByUuids(uuids []string) error
	// SearchByKeyword 按正文模糊搜索公开帖（分页）
	SearchByKeyword(keyword string, page, pageSize int) ([]model.Post, int64, error)
}

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	// FindByUuid 根据 UUID 查找评论
	FindByUuid(uuid string) (*model.Comment, error)
	// FindByPostUuid 分页查找帖子的评论（最早在前）
	FindByPostUuid(postUuid string, page, pageSize int) ([]model.Comment, int64, error)
	// Create 创建评论
	Create(comment *model.Comment) error
	// SoftDelete 软删除评论
	SoftDelete(uuid string) error
	// SoftDeleteByPostUuids 批量软删除评论（帖子级联）
	SoftDeleteByPostUuids(postUuids []string) error
}

// InteractionRepository 帖子互动数据访问接口（点赞/已读/收藏）
// 三类标记结构相同：信息流按页收集帖子 ID 后，批量 IN 查询避免 N+1
type InteractionRepository interface {
	// LikedPostUuids 过滤出用户点赞过的帖子 ID 子集
	LikedPostUuids(userUuid string, postUuids []string) ([]string, error)
	// ReadPostUuids 过滤出用户已读的帖子 ID 子集
	ReadPostUuids(userUuid string, postUuids []string) ([]string, error)
	// SavedPostUuids 过滤出用户收藏的帖子 ID 子集
	SavedPostUuids(userUuid string, postUuids []string) ([]string, error)
	// FindLike 查找点赞记录
	FindLike(postUuid, userUuid string) (*model.Reaction, error)
	// CreateLike 创建点赞记录
	CreateLike(like *model.Reaction) error
	// DeleteLike 删除点赞记录
	DeleteLike(postUuid, userUuid string) error
	// MarkRead 创建已读标记（已存在则忽略）
	MarkRead(postUuid, userUuid string) error
	// CreateSave 创建收藏记录
	CreateSave(save *model.SavedPost) error
	// DeleteSave 删除收藏记录
	DeleteSave(postUuid, userUuid string) error
}

// FollowRepository 关注关系数据访问接口
type FollowRepository interface {
	// Find 查找关注记录
	Find(followerUuid, followeeUuid string) (*model.Follow, error)
	// Create 创建关注
	Create(follow *model.Follow) error
	// Delete 取消关注
	Delete(followerUuid, followeeUuid string) error
	// FollowersOf 分页查找关注某用户的人
	FollowersOf(userUuid string, page, pageSize int) ([]model.Follow, int64, error)
	// FollowingOf 分页查找某用户关注的人
	FollowingOf(userUuid string, page, pageSize int) ([]model.Follow, int64, error)
}

// FriendshipRepository 好友关系数据访问接口
type FriendshipRepository interface {
	// FindBetween 查找两人之间的好友记录（不区分方向）
	FindBetween(userA, userB string) (*model.Friendship, error)
	// Create 创建好友申请
	Create(friendship *model.Friendship) error
	// UpdateStatus 更新好友关系状态
	UpdateStatus(id uint, status int8) error
	// Delete 删除好友关系（拒绝/解除）
	Delete(id uint) error
	// FriendsOf 分页查找已确认的好友关系
	FriendsOf(userUuid string, page, pageSize int) ([]model.Friendship, int64, error)
	// PendingFor 查找待某用户确认的申请
	PendingFor(userUuid string) ([]model.Friendship, error)
}

// InstitutionRepository 机构数据访问接口
type InstitutionRepository interface {
	FindByUuid(uuid string) (*model.Institution, error)
	FindBySlug(slug string) (*model.Institution, error)
	Create(inst *model.Institution) error
	Update(inst *model.Institution) error
	GetList(page, pageSize int) ([]model.Institution, int64, error)
}

// DepartmentRepository 院系数据访问接口
type DepartmentRepository interface {
	FindByUuid(uuid string) (*model.Department, error)
	Create(dept *model.Department) error
	Update(dept *model.Department) error
	GetListByInstitution(institutionUuid string, page, pageSize int) ([]model.Department, int64, error)
}

// RoomRepository 教室数据访问接口
type RoomRepository interface {
	FindByUuid(uuid string) (*model.Room, error)
	Create(room *model.Room) error
	Update(room *model.Room) error
	GetListByDepartment(departmentUuid string, page, pageSize int) ([]model.Room, int64, error)
}

// NotificationRepository 通知数据访问接口
type NotificationRepository interface {
	// Create 创建通知
	Create(notification *model.Notification) error
	// FindByRecipient 分页查找用户的通知（最新在前）
	FindByRecipient(recipientUuid string, page, pageSize int) ([]model.Notification, int64, error)
	// MarkRead 标记单条通知已读
	MarkRead(uuid, recipientUuid string) error
	// MarkAllRead 标记用户全部通知已读
	MarkAllRead(recipientUuid string) error
	// CountUnread 统计未读通知数
	CountUnread(recipientUuid string) (int64, error)
}

// ==================== 复合结构 ====================

// GroupMemberWithUserInfo 群成员详细信息（含用户资料）
// 用于群成员列表展示
type GroupMemberWithUserInfo struct {
	UserId   string `json:"userId"`   // 用户 UUID
	Nickname string `json:"nickname"` // 用户昵称
	Avatar   string `json:"avatar"`   // 用户头像
	Role     int8   `json:"role"`     // 群内角色
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db           *gorm.DB               // GORM 数据库实例
	User         UserRepository         // 用户 Repository
	Group        GroupRepository        // 群组 Repository
	GroupMember  GroupMemberRepository  // 群成员 Repository
	Post         PostRepository         // 帖子 Repository
	Comment      CommentRepository      // 评论 Repository
	Interaction  InteractionRepository  // 帖子互动 Repository
	Follow       FollowRepository       // 关注 Repository
	Friendship   FriendshipRepository   // 好友 Repository
	Institution  InstitutionRepository  // 机构 Repository
	Department   DepartmentRepository   // 院系 Repository
	Room         RoomRepository         // 教室 Repository
	Notification NotificationRepository // 通知 Repository
}

// NewRepositories 创建所有 Repository 实例
// db: GORM 数据库实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:           db,
		User:         NewUserRepository(db),
		Group:        NewGroupRepository(db),
		GroupMember:  NewGroupMemberRepository(db),
		Post:         NewPostRepository(db),
		Comment:      NewCommentRepository(db),
		Interaction:  NewInteractionRepository(db),
		Follow:       NewFollowRepository(db),
		Friendship:   NewFriendshipRepository(db),
		Institution:  NewInstitutionRepository(db),
		Department:   NewDepartmentRepository(db),
		Room:         NewRoomRepository(db),
		Notification: NewNotificationRepository(db),
	}
}

// NewStubRepositories 使用桩实现组装 Repositories（单元测试用）
// 无数据库实例，Transaction 将直接在当前实例上执行函数
func NewStubRepositories(fill func(r *Repositories)) *Repositories {
	r := &Repositories{}
	fill(r)
	return r
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚：
// 成员变更与计数更新、群主转让的两次角色写入、群组删除级联
// 都必须走这里，不允许拆成多次独立写入
// fn: 事务执行函数，接收事务内的 Repositories 实例
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	// 测试桩场景没有数据库实例，直接执行
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 使用事务 db 创建新的 Repositories 实例
		return fn(NewRepositories(tx))
	})
}
