// Package social 实现社交关系业务逻辑
// 关注是单向关系，建立即生效；好友是双向关系，需申请和确认，
// 两人之间始终最多一条好友记录（不区分方向）
package social

import (
	"context"

	"go.uber.org/zap"

	"campus_hub_server/internal/dao/mysql/repository"
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/dto/respond"
	"campus_hub_server/internal/infrastructure/mq"
	"campus_hub_server/internal/model"
	"campus_hub_server/pkg/enum/friend/friend_status_enum"
	"campus_hub_server/pkg/enum/notification/notification_type_enum"
	"campus_hub_server/pkg/errorx"
)

// socialService 社交关系业务逻辑实现
type socialService struct {
	repos     *repository.Repositories
	publisher mq.EventPublisher
}

// NewSocialService 构造函数
func NewSocialService(repos *repository.Repositories, publisher mq.EventPublisher) *socialService {
	return &socialService{
		repos:     repos,
		publisher: publisher,
	}
}

// publish 发布活动事件，发布器未注入时跳过
func (s *socialService) publish(event *mq.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), event); err != nil {
		zap.L().Error("publish activity event failed", zap.Error(err))
	}
}

// ==================== 关注 ====================

// Follow 关注用户
func (s *socialService) Follow(userUuid, targetUuid string) error {
	if userUuid == targetUuid {
		return errorx.New(errorx.CodeInvalidParam, "不能关注自己")
	}
	if _, err := s.repos.User.FindByUuid(targetUuid); err != nil {
		return err
	}
	if _, err := s.repos.Follow.Find(userUuid, targetUuid); err == nil {
		return errorx.New(errorx.CodeConflict, "已关注该用户")
	} else if !errorx.IsNotFound(err) {
		return err
	}
	return s.repos.Follow.Create(&model.Follow{
		FollowerUuid: userUuid,
		FolloweeUuid: targetUuid,
	})
}

// Unfollow 取消关注
func (s *socialService) Unfollow(userUuid, targetUuid string) error {
	if _, err := s.repos.Follow.Find(userUuid, targetUuid); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeConflict, "尚未关注该用户")
		}
		return err
	}
	return s.repos.Follow.Delete(userUuid, targetUuid)
}

// GetFollowers 获取粉丝列表
func (s *socialService) GetFollowers(req request.GetSocialListRequest) (*respond.GetSocialListRespond, error) {
	follows, total, err := s.repos.Follow.FollowersOf(req.UserUuid, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	uuids := make([]string, 0, len(follows))
	for _, f := range follows {
		uuids = append(uuids, f.FollowerUuid)
	}
	return s.buildSocialList(uuids, total, req.Page, req.PageSize)
}

// GetFollowing 获取关注列表
func (s *socialService) GetFollowing(req request.GetSocialListRequest) (*respond.GetSocialListRespond, error) {
	follows, total, err := s.repos.Follow.FollowingOf(req.UserUuid, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	uuids := make([]string, 0, len(follows))
	for _, f := range follows {
		uuids = append(uuids, f.FolloweeUuid)
	}
	return s.buildSocialList(uuids, total, req.Page, req.PageSize)
}

// ==================== 好友 ====================

// ApplyFriend 发起好友申请
// 两人之间已有任何方向的记录（待确认或已接受）时返回冲突
func (s *socialService) ApplyFriend(userUuid, targetUuid string) error {
	if userUuid == targetUuid {
		return errorx.New(errorx.CodeInvalidParam, "不能添加自己为好友")
	}
	if _, err := s.repos.User.FindByUuid(targetUuid); err != nil {
		return err
	}
	existing, err := s.repos.Friendship.FindBetween(userUuid, targetUuid)
	if err != nil && !errorx.IsNotFound(err) {
		return err
	}
	if existing != nil {
		if existing.Status == friend_status_enum.ACCEPTED {
			return errorx.New(errorx.CodeConflict, "已是好友关系")
		}
		return errorx.New(errorx.CodeConflict, "已有待处理的好友申请")
	}

	if err := s.repos.Friendship.Create(&model.Friendship{
		RequesterUuid: userUuid,
		AddresseeUuid: targetUuid,
		Status:        friend_status_enum.PENDING,
	}); err != nil {
		return err
	}
	s.publish(mq.NewEvent(notification_type_enum.FRIEND_REQUEST, targetUuid, userUuid, "",
		"收到一条好友申请"))
	return nil
}

// AcceptFriend 接受好友申请（仅接收方可操作）
func (s *socialService) AcceptFriend(userUuid, requesterUuid string) error {
	friendship, err := s.repos.Friendship.FindBetween(userUuid, requesterUuid)
	if err != nil {
		return err
	}
	if friendship.Status != friend_status_enum.PENDING ||
		friendship.AddresseeUuid != userUuid || friendship.RequesterUuid != requesterUuid {
		return errorx.New(errorx.CodeConflict, "没有来自该用户的待处理申请")
	}

	if err := s.repos.Friendship.UpdateStatus(friendship.ID, friend_status_enum.ACCEPTED); err != nil {
		return err
	}
	s.publish(mq.NewEvent(notification_type_enum.FRIEND_ACCEPTED, requesterUuid, userUuid, "",
		"你的好友申请已通过"))
	return nil
}

// RejectFriend 拒绝好友申请，删除记录后对方可再次申请
func (s *socialService) RejectFriend(userUuid, requesterUuid string) error {
	friendship, err := s.repos.Friendship.FindBetween(userUuid, requesterUuid)
	if err != nil {
		return err
	}
	if friendship.Status != friend_status_enum.PENDING ||
		friendship.AddresseeUuid != userUuid || friendship.RequesterUuid != requesterUuid {
		return errorx.New(errorx.CodeConflict, "没有来自该用户的待处理申请")
	}
	return s.repos.Friendship.Delete(friendship.ID)
}

// DeleteFriend 解除好友关系
func (s *socialService) DeleteFriend(userUuid, targetUuid string) error {
	friendship, err := s.repos.Friendship.FindBetween(userUuid, targetUuid)
	if err != nil {
		return err
	}
	if friendship.Status != friend_status_enum.ACCEPTED {
		return errorx.New(errorx.CodeConflict, "不是好友关系")
	}
	return s.repos.Friendship.Delete(friendship.ID)
}

// GetFriendList 获取好友列表
func (s *socialService) GetFriendList(userUuid string, req request.GetSocialListRequest) (*respond.GetSocialListRespond, error) {
	target := req.UserUuid
	if target == "" {
		target = userUuid
	}
	friendships, total, err := s.repos.Friendship.FriendsOf(target, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	// 每条记录里对端可能是 requester 也可能是 addressee
	uuids := make([]string, 0, len(friendships))
	for _, f := range friendships {
		if f.RequesterUuid == target {
			uuids = append(uuids, f.AddresseeUuid)
		} else {
			uuids = append(uuids, f.RequesterUuid)
		}
	}
	return s.buildSocialList(uuids, total, req.Page, req.PageSize)
}

// GetFriendRequestList 获取待处理好友申请列表（当前用户为接收方）
func (s *socialService) GetFriendRequestList(userUuid string) (*respond.GetFriendRequestListRespond, error) {
	pending, err := s.repos.Friendship.PendingFor(userUuid)
	if err != nil {
		return nil, err
	}

	uuids := make([]string, 0, len(pending))
	for _, f := range pending {
		uuids = append(uuids, f.RequesterUuid)
	}
	users, err := s.repos.User.FindByUuids(uuids)
	if err != nil {
		return nil, err
	}
	userByUuid := make(map[string]model.UserInfo, len(users))
	for _, u := range users {
		userByUuid[u.Uuid] = u
	}

	rsp := &respond.GetFriendRequestListRespond{Requests: make([]respond.FriendRequestItem, 0, len(pending))}
	for _, f := range pending {
		item := respond.FriendRequestItem{
			Uuid:      f.RequesterUuid,
			AppliedAt: f.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if u, ok := userByUuid[f.RequesterUuid]; ok {
			item.Nickname = u.Nickname
			item.Avatar = u.Avatar
		}
		rsp.Requests = append(rsp.Requests, item)
	}
	return rsp, nil
}

// AreFriends 判断两人是否为已确认的好友
func (s *socialService) AreFriends(userA, userB string) (bool, error) {
	friendship, err := s.repos.Friendship.FindBetween(userA, userB)
	if err != nil {
		if errorx.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return friendship.Status == friend_status_enum.ACCEPTED, nil
}

// buildSocialList 批量查用户资料并组装社交列表响应
func (s *socialService) buildSocialList(uuids []string, total int64, page, pageSize int) (*respond.GetSocialListRespond, error) {
	users, err := s.repos.User.FindByUuids(uuids)
	if err != nil {
		return nil, err
	}
	userByUuid := make(map[string]model.UserInfo, len(users))
	for _, u := range users {
		userByUuid[u.Uuid] = u
	}

	rsp := &respond.GetSocialListRespond{
		Users:      make([]respond.SocialUserItem, 0, len(uuids)),
		Pagination: respond.NewPagination(total, page, pageSize),
	}
	for _, uuid := range uuids {
		if u, ok := userByUuid[uuid]; ok {
			rsp.Users = append(rsp.Users, respond.SocialUserItem{
				Uuid:     u.Uuid,
				Nickname: u.Nickname,
				Avatar:   u.Avatar,
				Bio:      u.Bio,
			})
		}
	}
	return rsp, nil
}
