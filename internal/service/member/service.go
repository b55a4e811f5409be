// Package member 实现群成员关系业务逻辑
// 成员关系是一个状态机：JOINED/PENDING/INVITED/BANNED，
// (group, user) 唯一索引保证一个用户在一个群中最多一条记录。
// 群组成员数只随 JOINED 状态的产生和消失变动，其余状态迁移不动计数。
package member

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"campus_hub_server/internal/dao/mysql/repository"
	myredis "campus_hub_server/internal/dao/redis"
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/dto/respond"
	"campus_hub_server/internal/infrastructure/mq"
	"campus_hub_server/internal/model"
	"campus_hub_server/pkg/enum/group/group_privacy_enum"
	"campus_hub_server/pkg/enum/group/group_role_enum"
	"campus_hub_server/pkg/enum/group/member_status_enum"
	"campus_hub_server/pkg/enum/invite/invite_result_enum"
	"campus_hub_server/pkg/enum/notification/notification_type_enum"
	"campus_hub_server/pkg/errorx"
)

// memberService 群成员业务逻辑实现
type memberService struct {
	repos     *repository.Repositories
	cache     myredis.AsyncCacheService
	publisher mq.EventPublisher
}

// NewMemberService 构造函数，注入所有依赖
func NewMemberService(repos *repository.Repositories, cache myredis.AsyncCacheService, publisher mq.EventPublisher) *memberService {
	return &memberService{
		repos:     repos,
		cache:     cache,
		publisher: publisher,
	}
}

// invalidateGroupCache 异步失效群组相关缓存
func (m *memberService) invalidateGroupCache(groupUuid string) {
	if m.cache == nil {
		return
	}
	m.cache.SubmitTask(func() {
		if err := m.cache.DeleteByPatterns(context.Background(), []string{
			"group_info_" + groupUuid,
			"group_list_*",
		}); err != nil {
			zap.L().Error(err.Error())
		}
	})
}

// publish 发布活动事件，发布器未注入时跳过（单元测试场景）
func (m *memberService) publish(event *mq.Event) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.Publish(context.Background(), event); err != nil {
		zap.L().Error("publish activity event failed", zap.Error(err))
	}
}

// findMembership 查找成员记录，NotFound 时返回 (nil, nil)
func (m *memberService) findMembership(groupUuid, userUuid string) (*model.GroupMember, error) {
	member, err := m.repos.GroupMember.FindByGroupAndUser(groupUuid, userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return member, nil
}

// requireRole 校验操作者在群内的角色不低于 min，返回操作者的成员记录
func (m *memberService) requireRole(groupUuid, actorUuid string, min int8) (*model.GroupMember, error) {
	actor, err := m.findMembership(groupUuid, actorUuid)
	if err != nil {
		return nil, err
	}
	if actor == nil || actor.Status != member_status_enum.JOINED {
		return nil, errorx.New(errorx.CodeForbidden, "不是群组成员")
	}
	if !group_role_enum.AtLeast(actor.Role, min) {
		return nil, errorx.New(errorx.CodeForbidden, "权限不足")
	}
	return actor, nil
}

// ==================== 加入 ====================

// JoinGroup 加入群组
// 公开群直接成为成员，私密群进入待审核状态，封闭群只能被邀请
func (m *memberService) JoinGroup(userUuid, groupUuid string) error {
	group, err := m.repos.Group.FindByUuid(groupUuid)
	if err != nil {
		return err
	}

	existing, err := m.findMembership(groupUuid, userUuid)
	if err != nil {
		return err
	}
	if existing != nil {
		switch existing.Status {
		case member_status_enum.BANNED:
			return errorx.New(errorx.CodeForbidden, "已被该群组封禁")
		case member_status_enum.JOINED:
			return errorx.New(errorx.CodeConflict, "已是群组成员")
		case member_status_enum.INVITED:
			// 受邀用户主动加入等同于接受邀请，直接转为正式成员
			return m.repos.Transaction(func(tx *repository.Repositories) error {
				if err := tx.GroupMember.UpdateStatus(groupUuid, userUuid, member_status_enum.JOINED); err != nil {
					return err
				}
				if err := tx.Group.IncrementMemberCount(groupUuid); err != nil {
					return err
				}
				m.invalidateGroupCache(groupUuid)
				m.publish(mq.NewEvent(notification_type_enum.MEMBER_JOINED, group.OwnerId, userUuid, groupUuid,
					fmt.Sprintf("新成员加入群组 %s", group.Name)))
				return nil
			})
		default:
			return errorx.New(errorx.CodeConflict, "已有待审核的申请")
		}
	}

	switch group.Privacy {
	case group_privacy_enum.PUBLIC:
		// 直接加入，成员数 +1
		return m.repos.Transaction(func(tx *repository.Repositories) error {
			member := &model.GroupMember{
				GroupUuid: groupUuid,
				UserUuid:  userUuid,
				Role:      group_role_enum.MEMBER,
				Status:    member_status_enum.JOINED,
			}
			if err := tx.GroupMember.Create(member); err != nil {
				return err
			}
			if err := tx.Group.IncrementMemberCount(groupUuid); err != nil {
				return err
			}
			m.invalidateGroupCache(groupUuid)
			m.publish(mq.NewEvent(notification_type_enum.MEMBER_JOINED, group.OwnerId, userUuid, groupUuid,
				fmt.Sprintf("新成员加入群组 %s", group.Name)))
			return nil
		})
	case group_privacy_enum.PRIVATE:
		// 待审核，不动计数
		member := &model.GroupMember{
			GroupUuid: groupUuid,
			UserUuid:  userUuid,
			Role:      group_role_enum.MEMBER,
			Status:    member_status_enum.PENDING,
		}
		if err := m.repos.GroupMember.Create(member); err != nil {
			return err
		}
		m.publish(mq.NewEvent(notification_type_enum.JOIN_REQUEST, group.OwnerId, userUuid, groupUuid,
			fmt.Sprintf("收到加入群组 %s 的申请", group.Name)))
		return nil
	default:
		return errorx.New(errorx.CodeForbidden, "封闭群组仅限邀请加入")
	}
}

// CancelJoin 撤回入群申请
func (m *memberService) CancelJoin(userUuid, groupUuid string) error {
	existing, err := m.repos.GroupMember.FindByGroupAndUser(groupUuid, userUuid)
	if err != nil {
		return err
	}
	if existing.Status != member_status_enum.PENDING {
		return errorx.New(errorx.CodeConflict, "没有待审核的申请")
	}
	return m.repos.GroupMember.Delete(groupUuid, userUuid)
}

// AcceptMember 批准入群申请（管理员以上）
func (m *memberService) AcceptMember(actorUuid, groupUuid, targetUuid string) error {
	if _, err := m.requireRole(groupUuid, actorUuid, group_role_enum.ADMIN); err != nil {
		return err
	}
	target, err := m.repos.GroupMember.FindByGroupAndUser(groupUuid, targetUuid)
	if err != nil {
		return err
	}
	if target.Status != member_status_enum.PENDING {
		return errorx.New(errorx.CodeConflict, "该用户没有待审核的申请")
	}

	group, err := m.repos.Group.FindByUuid(groupUuid)
	if err != nil {
		return err
	}

	return m.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.GroupMember.UpdateStatus(groupUuid, targetUuid, member_status_enum.JOINED); err != nil {
			return err
		}
		if err := tx.Group.IncrementMemberCount(groupUuid); err != nil {
			return err
		}
		m.invalidateGroupCache(groupUuid)
		m.publish(mq.NewEvent(notification_type_enum.REQUEST_ACCEPTED, targetUuid, actorUuid, groupUuid,
			fmt.Sprintf("加入群组 %s 的申请已通过", group.Name)))
		return nil
	})
}

// RejectMember 拒绝入群申请（管理员以上），删除记录后可再次申请
func (m *memberService) RejectMember(actorUuid, groupUuid, targetUuid string) error {
	if _, err := m.requireRole(groupUuid, actorUuid, group_role_enum.ADMIN); err != nil {
		return err
	}
	target, err := m.repos.GroupMember.FindByGroupAndUser(groupUuid, targetUuid)
	if err != nil {
		return err
	}
	if target.Status != member_status_enum.PENDING {
		return errorx.New(errorx.CodeConflict, "该用户没有待审核的申请")
	}
	return m.repos.GroupMember.Delete(groupUuid, targetUuid)
}

// ==================== 邀请 ====================

// InviteMembers 批量邀请用户加入群组
// 逐个处理：已封禁的返回 BANNED，已有成员关系的返回 ALREADY_ASSOCIATED，
// 其余创建 INVITED 记录。部分目标被跳过属于正常返回而非失败
func (m *memberService) InviteMembers(actorUuid string, req request.InviteMembersRequest) (*respond.InviteMembersRespond, error) {
	actor, err := m.findMembership(req.GroupUuid, actorUuid)
	if err != nil {
		return nil, err
	}
	if actor == nil || actor.Status != member_status_enum.JOINED {
		return nil, errorx.New(errorx.CodeForbidden, "不是群组成员")
	}

	group, err := m.repos.Group.FindByUuid(req.GroupUuid)
	if err != nil {
		return nil, err
	}
	// 非公开群组仅协管员以上可发出邀请
	if group.Privacy != group_privacy_enum.PUBLIC && !group_role_enum.AtLeast(actor.Role, group_role_enum.MODERATOR) {
		return nil, errorx.New(errorx.CodeForbidden, "权限不足")
	}

	rsp := &respond.InviteMembersRespond{Results: make([]respond.InviteResultItem, 0, len(req.UserUuids))}
	for _, targetUuid := range req.UserUuids {
		result := invite_result_enum.INVITED

		existing, err := m.findMembership(req.GroupUuid, targetUuid)
		if err != nil {
			return nil, err
		}
		switch {
		case existing != nil && existing.Status == member_status_enum.BANNED:
			result = invite_result_enum.BANNED
		case existing != nil:
			result = invite_result_enum.ALREADY_ASSOCIATED
		default:
			member := &model.GroupMember{
				GroupUuid: req.GroupUuid,
				UserUuid:  targetUuid,
				Role:      group_role_enum.MEMBER,
				Status:    member_status_enum.INVITED,
				InvitedBy: actorUuid,
			}
			if err := m.repos.GroupMember.Create(member); err != nil {
				// 并发下唯一索引冲突视为已有关系
				if errorx.IsConflict(err) {
					result = invite_result_enum.ALREADY_ASSOCIATED
				} else {
					return nil, err
				}
			} else {
				m.publish(mq.NewEvent(notification_type_enum.GROUP_INVITE, targetUuid, actorUuid, req.GroupUuid,
					fmt.Sprintf("邀请你加入群组 %s", group.Name)))
			}
		}
		rsp.Results = append(rsp.Results, respond.InviteResultItem{UserUuid: targetUuid, Result: result})
	}
	return rsp, nil
}

// AcceptInvite 接受入群邀请
func (m *memberService) AcceptInvite(userUuid, groupUuid string) error {
	existing, err := m.repos.GroupMember.FindByGroupAndUser(groupUuid, userUuid)
	if err != nil {
		return err
	}
	if existing.Status != member_status_enum.INVITED {
		return errorx.New(errorx.CodeConflict, "没有待处理的邀请")
	}

	return m.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.GroupMember.UpdateStatus(groupUuid, userUuid, member_status_enum.JOINED); err != nil {
			return err
		}
		if err := tx.Group.IncrementMemberCount(groupUuid); err != nil {
			return err
		}
		m.invalidateGroupCache(groupUuid)
		if existing.InvitedBy != "" {
			m.publish(mq.NewEvent(notification_type_enum.MEMBER_JOINED, existing.InvitedBy, userUuid, groupUuid,
				"你邀请的用户已加入群组"))
		}
		return nil
	})
}

// RejectInvite 拒绝入群邀请
func (m *memberService) RejectInvite(userUuid, groupUuid string) error {
	existing, err := m.repos.GroupMember.FindByGroupAndUser(groupUuid, userUuid)
	if err != nil {
		return err
	}
	if existing.Status != member_status_enum.INVITED {
		return errorx.New(errorx.CodeConflict, "没有待处理的邀请")
	}
	return m.repos.GroupMember.Delete(groupUuid, userUuid)
}

// ==================== 退出与移除 ====================

// LeaveGroup 退出群组
// 群主不可退出，必须先转让群主身份，保证群组始终恰好一个群主
func (m *memberService) LeaveGroup(userUuid, groupUuid string) error {
	existing, err := m.repos.GroupMember.FindByGroupAndUser(groupUuid, userUuid)
	if err != nil {
		return err
	}
	if existing.Status != member_status_enum.JOINED {
		return errorx.New(errorx.CodeConflict, "不是群组成员")
	}
	if existing.Role == group_role_enum.OWNER {
		return errorx.New(errorx.CodeForbidden, "群主不能退出群组，请先转让群主")
	}

	return m.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.GroupMember.Delete(groupUuid, userUuid); err != nil {
			return err
		}
		if err := tx.Group.DecrementMemberCount(groupUuid); err != nil {
			return err
		}
		m.invalidateGroupCache(groupUuid)
		return nil
	})
}

// RemoveMember 移除群成员
// 操作者须为管理员以上，且角色严格高于目标，群主不可被移除
// （管理员不能移除另一名管理员，只有群主可以）
func (m *memberService) RemoveMember(actorUuid, groupUuid, targetUuid string) error {
	actor, err := m.requireRole(groupUuid, actorUuid, group_role_enum.ADMIN)
	if err != nil {
		return err
	}
	target, err := m.repos.GroupMember.FindByGroupAndUser(groupUuid, targetUuid)
	if err != nil {
		return err
	}
	if target.Status != member_status_enum.JOINED {
		return errorx.New(errorx.CodeConflict, "该用户不是群组成员")
	}
	if !group_role_enum.Outranks(actor.Role, target.Role) {
		return errorx.New(errorx.CodeForbidden, "不能移除同级或更高角色的成员")
	}

	return m.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.GroupMember.Delete(groupUuid, targetUuid); err != nil {
			return err
		}
		if err := tx.Group.DecrementMemberCount(groupUuid); err != nil {
			return err
		}
		m.invalidateGroupCache(groupUuid)
		return nil
	})
}

// ==================== 角色管理 ====================

// ChangeRole 变更成员角色
// 仅群主可操作，OWNER 不可通过此接口授予（走 TransferOwnership）。
// 一次只能升降一级：晋升协管员要求目标当前为普通成员，降回协管员要求目标当前为管理员，
// 前置角色不符时报冲突而不是直接改写
func (m *memberService) ChangeRole(actorUuid string, req request.ChangeRoleRequest) error {
	if !group_role_enum.Valid(req.Role) || req.Role == group_role_enum.OWNER {
		return errorx.New(errorx.CodeInvalidParam, "非法的角色取值")
	}
	if _, err := m.requireRole(req.GroupUuid, actorUuid, group_role_enum.OWNER); err != nil {
		return err
	}
	target, err := m.repos.GroupMember.FindByGroupAndUser(req.GroupUuid, req.UserUuid)
	if err != nil {
		return err
	}
	if target.Status != member_status_enum.JOINED {
		return errorx.New(errorx.CodeConflict, "该用户不是群组成员")
	}
	if target.Role == group_role_enum.OWNER {
		return errorx.New(errorx.CodeForbidden, "不能变更群主角色")
	}
	if target.Role == req.Role {
		return errorx.New(errorx.CodeConflict, "成员已是该角色")
	}
	if req.Role-target.Role != 1 && target.Role-req.Role != 1 {
		return errorx.New(errorx.CodeConflict, "目标当前角色不满足该变更的前置条件")
	}

	if err := m.repos.GroupMember.UpdateRole(req.GroupUuid, req.UserUuid, req.Role); err != nil {
		return err
	}
	m.publish(mq.NewEvent(notification_type_enum.ROLE_CHANGED, req.UserUuid, actorUuid, req.GroupUuid,
		fmt.Sprintf("你的群内角色已变更为 %s", group_role_enum.Label(req.Role))))
	return nil
}

// TransferOwnership 转让群主
// 仅群主可操作，目标须为已加入的管理员。
// 两次角色写入和 OwnerId 更新在同一事务内，保证始终恰好一个群主
func (m *memberService) TransferOwnership(actorUuid, groupUuid, targetUuid string) error {
	actor, err := m.findMembership(groupUuid, actorUuid)
	if err != nil {
		return err
	}
	if actor == nil || actor.Role != group_role_enum.OWNER || actor.Status != member_status_enum.JOINED {
		return errorx.New(errorx.CodeForbidden, "仅群主可以转让群主")
	}
	target, err := m.repos.GroupMember.FindByGroupAndUser(groupUuid, targetUuid)
	if err != nil {
		return err
	}
	if target.Status != member_status_enum.JOINED || target.Role != group_role_enum.ADMIN {
		return errorx.New(errorx.CodeConflict, "只能转让给已加入的管理员")
	}

	group, err := m.repos.Group.FindByUuid(groupUuid)
	if err != nil {
		return err
	}

	return m.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.GroupMember.UpdateRole(groupUuid, actorUuid, group_role_enum.ADMIN); err != nil {
			return err
		}
		if err := tx.GroupMember.UpdateRole(groupUuid, targetUuid, group_role_enum.OWNER); err != nil {
			return err
		}
		group.OwnerId = targetUuid
		if err := tx.Group.Update(group); err != nil {
			return err
		}
		m.invalidateGroupCache(groupUuid)
		m.publish(mq.NewEvent(notification_type_enum.ROLE_CHANGED, targetUuid, actorUuid, groupUuid,
			fmt.Sprintf("你已成为群组 %s 的群主", group.Name)))
		return nil
	})
}

// ==================== 封禁 ====================

// BanMember 封禁成员
// 操作者须为协管员以上，且角色严格高于目标。
// 已加入的成员被封禁时成员数 -1；待审核/已邀请的记录直接转为封禁，不动计数。
// 封禁记录保留，阻止该用户再次申请或被邀请
func (m *memberService) BanMember(actorUuid, groupUuid, targetUuid string) error {
	actor, err := m.requireRole(groupUuid, actorUuid, group_role_enum.MODERATOR)
	if err != nil {
		return err
	}
	target, err := m.repos.GroupMember.FindByGroupAndUser(groupUuid, targetUuid)
	if err != nil {
		return err
	}
	if target.Status == member_status_enum.BANNED {
		return errorx.New(errorx.CodeConflict, "该用户已被封禁")
	}
	if target.Role == group_role_enum.OWNER {
		return errorx.New(errorx.CodeForbidden, "不能封禁群主")
	}
	if !group_role_enum.Outranks(actor.Role, target.Role) {
		return errorx.New(errorx.CodeForbidden, "不能封禁同级或更高角色的成员")
	}

	wasJoined := target.Status == member_status_enum.JOINED
	return m.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.GroupMember.UpdateStatus(groupUuid, targetUuid, member_status_enum.BANNED); err != nil {
			return err
		}
		// 封禁后不再是群内角色，统一降回普通成员位
		if err := tx.GroupMember.UpdateRole(groupUuid, targetUuid, group_role_enum.MEMBER); err != nil {
			return err
		}
		if wasJoined {
			if err := tx.Group.DecrementMemberCount(groupUuid); err != nil {
				return err
			}
		}
		m.invalidateGroupCache(groupUuid)
		return nil
	})
}

// UnbanMember 解除封禁
// 删除封禁记录，之后该用户可重新申请加入，不会自动恢复成员身份
func (m *memberService) UnbanMember(actorUuid, groupUuid, targetUuid string) error {
	if _, err := m.requireRole(groupUuid, actorUuid, group_role_enum.ADMIN); err != nil {
		return err
	}
	target, err := m.repos.GroupMember.FindByGroupAndUser(groupUuid, targetUuid)
	if err != nil {
		return err
	}
	if target.Status != member_status_enum.BANNED {
		return errorx.New(errorx.CodeConflict, "该用户未被封禁")
	}
	return m.repos.GroupMember.Delete(groupUuid, targetUuid)
}

// ==================== 列表 ====================

// GetMemberList 获取已加入成员列表（含用户资料）
func (m *memberService) GetMemberList(req request.GetMemberListRequest) (*respond.GetGroupMemberListRespond, error) {
	members, total, err := m.repos.GroupMember.FindMembersWithUserInfo(req.GroupUuid, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]respond.GroupMemberItem, 0, len(members))
	for _, member := range members {
		items = append(items, respond.GroupMemberItem{
			UserId:   member.UserId,
			Nickname: member.Nickname,
			Avatar:   member.Avatar,
			Role:     member.Role,
		})
	}
	return &respond.GetGroupMemberListRespond{
		Members:    items,
		Pagination: respond.NewPagination(total, req.Page, req.PageSize),
	}, nil
}

// GetJoinRequestList 获取待审核入群申请列表（协管员以上）
func (m *memberService) GetJoinRequestList(actorUuid string, req request.GetJoinRequestListRequest) (*respond.GetJoinRequestListRespond, error) {
	if _, err := m.requireRole(req.GroupUuid, actorUuid, group_role_enum.MODERATOR); err != nil {
		return nil, err
	}

	pending, total, err := m.repos.GroupMember.FindByGroupAndStatus(req.GroupUuid, member_status_enum.PENDING, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	// 批量查申请人资料，避免 N+1
	uuids := make([]string, 0, len(pending))
	for _, p := range pending {
		uuids = append(uuids, p.UserUuid)
	}
	users, err := m.repos.User.FindByUuids(uuids)
	if err != nil {
		return nil, err
	}
	userByUuid := make(map[string]model.UserInfo, len(users))
	for _, u := range users {
		userByUuid[u.Uuid] = u
	}

	items := make([]respond.JoinRequestItem, 0, len(pending))
	for _, p := range pending {
		item := respond.JoinRequestItem{
			UserId:    p.UserUuid,
			AppliedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if u, ok := userByUuid[p.UserUuid]; ok {
			item.Nickname = u.Nickname
			item.Avatar = u.Avatar
		}
		items = append(items, item)
	}
	return &respond.GetJoinRequestListRespond{
		Requests:   items,
		Pagination: respond.NewPagination(total, req.Page, req.PageSize),
	}, nil
}
