// Package group 实现群组生命周期业务逻辑
// 创建群组时创建者自动成为群主，slug 在同一机构内唯一，
// 删除群组会级联软删除成员记录、帖子和评论
package group

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"campus_hub_server/internal/dao/mysql/repository"
	myredis "campus_hub_server/internal/dao/redis"
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/dto/respond"
	"campus_hub_server/internal/model"
	"campus_hub_server/pkg/constants"
	"campus_hub_server/pkg/enum/group/group_privacy_enum"
	"campus_hub_server/pkg/enum/group/group_role_enum"
	"campus_hub_server/pkg/enum/group/group_type_enum"
	"campus_hub_server/pkg/enum/group/member_status_enum"
	"campus_hub_server/pkg/errorx"
	"campus_hub_server/pkg/util/random"
	"campus_hub_server/pkg/util/slug"
)

// groupService 群组业务逻辑实现
type groupService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService
}

// NewGroupService 构造函数
func NewGroupService(repos *repository.Repositories, cache myredis.AsyncCacheService) *groupService {
	return &groupService{
		repos: repos,
		cache: cache,
	}
}

// invalidateCache 异步失效群组缓存
func (g *groupService) invalidateCache(groupUuid string) {
	if g.cache == nil {
		return
	}
	g.cache.SubmitTask(func() {
		if err := g.cache.DeleteByPatterns(context.Background(), []string{
			"group_info_" + groupUuid,
			"group_list_*",
		}); err != nil {
			zap.L().Error(err.Error())
		}
	})
}

// resolveSlug 生成机构内唯一的 slug
// 基础 slug 冲突时先追加时间戳，仍冲突则追加随机后缀并重试
func (g *groupService) resolveSlug(institutionUuid, name string) (string, error) {
	candidate := slug.Make(name)
	for i := 0; i < constants.SLUG_MAX_RETRY; i++ {
		_, err := g.repos.Group.FindBySlug(institutionUuid, candidate)
		if err != nil {
			if errorx.IsNotFound(err) {
				return candidate, nil
			}
			return "", err
		}
		if i == 0 {
			candidate = slug.WithTimestamp(slug.Make(name))
		} else {
			candidate = slug.WithRandomSuffix(slug.Make(name))
		}
	}
	return "", errorx.New(errorx.CodeConflict, "群组标识生成失败，请更换群组名称")
}

// ==================== 生命周期 ====================

// CreateGroup 创建群组
// 群组记录和群主成员记录在同一事务内创建，保证群组始终恰好一个群主
func (g *groupService) CreateGroup(creatorUuid string, req request.CreateGroupRequest) (*respond.GetGroupInfoRespond, error) {
	if !group_privacy_enum.Valid(req.Privacy) {
		return nil, errorx.New(errorx.CodeInvalidParam, "非法的隐私级别")
	}
	if !group_type_enum.Valid(req.Type) {
		return nil, errorx.New(errorx.CodeInvalidParam, "非法的群组类型")
	}
	if _, err := g.repos.Institution.FindByUuid(req.InstitutionUuid); err != nil {
		return nil, err
	}

	groupSlug, err := g.resolveSlug(req.InstitutionUuid, req.Name)
	if err != nil {
		return nil, err
	}

	group := &model.GroupInfo{
		Uuid:                "G" + random.GetNowAndLenRandomString(11),
		Name:                req.Name,
		Slug:                groupSlug,
		InstitutionUuid:     req.InstitutionUuid,
		Description:         req.Description,
		OwnerId:             creatorUuid,
		Privacy:             req.Privacy,
		Type:                req.Type,
		AllowMemberPosting:  req.AllowMemberPosting,
		RequirePostApproval: req.RequirePostApproval,
		MembersCount:        1,
	}
	if req.Avatar != "" {
		group.Avatar = req.Avatar
	}

	err = g.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Group.Create(group); err != nil {
			// 并发下 (institution, slug) 唯一索引冲突
			if errorx.IsConflict(err) {
				return errorx.New(errorx.CodeConflict, "群组标识已存在，请重试")
			}
			return err
		}
		owner := &model.GroupMember{
			GroupUuid: group.Uuid,
			UserUuid:  creatorUuid,
			Role:      group_role_enum.OWNER,
			Status:    member_status_enum.JOINED,
		}
		return tx.GroupMember.Create(owner)
	})
	if err != nil {
		return nil, err
	}

	g.invalidateCache(group.Uuid)
	return g.buildGroupInfoRespond(group, &model.GroupMember{
		GroupUuid: group.Uuid,
		UserUuid:  creatorUuid,
		Role:      group_role_enum.OWNER,
		Status:    member_status_enum.JOINED,
	}), nil
}

// UpdateGroup 更新群组信息（管理员以上）
// 指针字段为 nil 表示未提交，保持原值
func (g *groupService) UpdateGroup(actorUuid string, req request.UpdateGroupRequest) error {
	group, err := g.repos.Group.FindByUuid(req.GroupUuid)
	if err != nil {
		return err
	}
	if err := g.requireRole(req.GroupUuid, actorUuid, group_role_enum.ADMIN); err != nil {
		return err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.Avatar != nil {
		group.Avatar = *req.Avatar
	}
	if req.Privacy != nil {
		if !group_privacy_enum.Valid(*req.Privacy) {
			return errorx.New(errorx.CodeInvalidParam, "非法的隐私级别")
		}
		group.Privacy = *req.Privacy
	}
	if req.AllowMemberPosting != nil {
		group.AllowMemberPosting = *req.AllowMemberPosting
	}
	if req.RequirePostApproval != nil {
		group.RequirePostApproval = *req.RequirePostApproval
	}

	if err := g.repos.Group.Update(group); err != nil {
		return err
	}
	g.invalidateCache(req.GroupUuid)
	return nil
}

// DeleteGroup 删除群组（仅群主）
// 级联软删除成员记录、帖子和评论，全部在同一事务内完成
func (g *groupService) DeleteGroup(actorUuid, groupUuid string) error {
	group, err := g.repos.Group.FindByUuid(groupUuid)
	if err != nil {
		return err
	}
	if group.OwnerId != actorUuid {
		return errorx.New(errorx.CodeForbidden, "仅群主可以删除群组")
	}

	err = g.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Group.SoftDelete(groupUuid); err != nil {
			return err
		}
		if err := tx.GroupMember.SoftDeleteByGroupUuid(groupUuid); err != nil {
			return err
		}
		postUuids, err := tx.Post.FindUuidsByGroupUuid(groupUuid)
		if err != nil {
			return err
		}
		if len(postUuids) == 0 {
			return nil
		}
		if err := tx.Post.SoftDeleteByUuids(postUuids); err != nil {
			return err
		}
		return tx.Comment.SoftDeleteByPostUuids(postUuids)
	})
	if err != nil {
		return err
	}

	g.invalidateCache(groupUuid)
	return nil
}

// ==================== 查询 ====================

// GetGroupInfo 获取群组信息
// 群组本体走 Redis 缓存，查看者元信息每次实时推导
func (g *groupService) GetGroupInfo(viewerUuid, groupUuid string) (*respond.GetGroupInfoRespond, error) {
	group, err := g.findGroupWithCache(groupUuid)
	if err != nil {
		return nil, err
	}

	var membership *model.GroupMember
	if viewerUuid != "" {
		membership, err = g.repos.GroupMember.FindByGroupAndUser(groupUuid, viewerUuid)
		if err != nil && !errorx.IsNotFound(err) {
			return nil, err
		}
	}
	return g.buildGroupInfoRespond(group, membership), nil
}

// GetGroupList 分页获取机构下的群组列表（带缓存）
func (g *groupService) GetGroupList(req request.GetGroupListRequest) (*respond.GetGroupListRespond, error) {
	cacheKey := "group_list_" + req.InstitutionUuid + "_" + pageKey(req.Page, req.PageSize)
	if g.cache != nil {
		if cached, err := g.cache.Get(context.Background(), cacheKey); err == nil && cached != "" {
			var rsp respond.GetGroupListRespond
			if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
				return &rsp, nil
			}
		}
	}

	groups, total, err := g.repos.Group.GetGroupList(req.InstitutionUuid, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	rsp := &respond.GetGroupListRespond{
		Groups:     toSummaries(groups),
		Pagination: respond.NewPagination(total, req.Page, req.PageSize),
	}

	if g.cache != nil {
		data, err := json.Marshal(rsp)
		if err == nil {
			g.cache.SubmitTask(func() {
				if err := g.cache.Set(context.Background(), cacheKey, string(data), constants.GROUP_LIST_CACHE_TTL); err != nil {
					zap.L().Error(err.Error())
				}
			})
		}
	}
	return rsp, nil
}

// GetMyGroups 获取当前用户已加入的群组
func (g *groupService) GetMyGroups(userUuid string) ([]respond.GroupSummary, error) {
	memberships, err := g.repos.GroupMember.FindJoinedByUser(userUuid)
	if err != nil {
		return nil, err
	}

	summaries := make([]respond.GroupSummary, 0, len(memberships))
	for _, m := range memberships {
		group, err := g.findGroupWithCache(m.GroupUuid)
		if err != nil {
			// 群组可能已被删除而成员记录尚未清理
			if errorx.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		summaries = append(summaries, toSummary(group))
	}
	return summaries, nil
}

// ==================== 内部方法 ====================

// requireRole 校验操作者在群内角色不低于 min
func (g *groupService) requireRole(groupUuid, actorUuid string, min int8) error {
	member, err := g.repos.GroupMember.FindByGroupAndUser(groupUuid, actorUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeForbidden, "不是群组成员")
		}
		return err
	}
	if member.Status != member_status_enum.JOINED || !group_role_enum.AtLeast(member.Role, min) {
		return errorx.New(errorx.CodeForbidden, "权限不足")
	}
	return nil
}

// findGroupWithCache 查找群组，优先读缓存，未命中回源并异步写缓存
func (g *groupService) findGroupWithCache(groupUuid string) (*model.GroupInfo, error) {
	cacheKey := "group_info_" + groupUuid
	if g.cache != nil {
		if cached, err := g.cache.Get(context.Background(), cacheKey); err == nil && cached != "" {
			var group model.GroupInfo
			if err := json.Unmarshal([]byte(cached), &group); err == nil {
				return &group, nil
			}
		}
	}

	group, err := g.repos.Group.FindByUuid(groupUuid)
	if err != nil {
		return nil, err
	}
	if g.cache != nil {
		data, err := json.Marshal(group)
		if err == nil {
			g.cache.SubmitTask(func() {
				if err := g.cache.Set(context.Background(), cacheKey, string(data), constants.GROUP_INFO_CACHE_TTL); err != nil {
					zap.L().Error(err.Error())
				}
			})
		}
	}
	return group, nil
}

// buildGroupInfoRespond 组装群组信息响应，membership 可为 nil（非成员视角）
func (g *groupService) buildGroupInfoRespond(group *model.GroupInfo, membership *model.GroupMember) *respond.GetGroupInfoRespond {
	rsp := &respond.GetGroupInfoRespond{
		Uuid:                group.Uuid,
		Name:                group.Name,
		Slug:                group.Slug,
		InstitutionUuid:     group.InstitutionUuid,
		Description:         group.Description,
		Avatar:              group.Avatar,
		OwnerId:             group.OwnerId,
		Privacy:             group.Privacy,
		Type:                group.Type,
		AllowMemberPosting:  group.AllowMemberPosting,
		RequirePostApproval: group.RequirePostApproval,
		MembersCount:        group.MembersCount,
		PostsCount:          group.PostsCount,
		CreatedAt:           group.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	if membership == nil {
		return rsp
	}
	meta := &rsp.Viewer
	switch membership.Status {
	case member_status_enum.JOINED:
		meta.IsMember = true
		meta.Role = membership.Role
		meta.IsOwner = membership.Role == group_role_enum.OWNER
		meta.IsAdmin = group_role_enum.AtLeast(membership.Role, group_role_enum.ADMIN)
		meta.IsModerator = group_role_enum.AtLeast(membership.Role, group_role_enum.MODERATOR)
		meta.CanPost = group.AllowMemberPosting || meta.IsModerator
		meta.CanModerate = meta.IsModerator
		meta.CanManage = meta.IsAdmin
	case member_status_enum.PENDING:
		meta.IsPending = true
	case member_status_enum.INVITED:
		meta.IsInvited = true
	case member_status_enum.BANNED:
		meta.IsBanned = true
	}
	return rsp
}

// toSummary 模型转列表摘要
func toSummary(group *model.GroupInfo) respond.GroupSummary {
	return respond.GroupSummary{
		Uuid:         group.Uuid,
		Name:         group.Name,
		Slug:         group.Slug,
		Description:  group.Description,
		Avatar:       group.Avatar,
		Privacy:      group.Privacy,
		Type:         group.Type,
		MembersCount: group.MembersCount,
		PostsCount:   group.PostsCount,
	}
}

func toSummaries(groups []model.GroupInfo) []respond.GroupSummary {
	summaries := make([]respond.GroupSummary, 0, len(groups))
	for i := range groups {
		summaries = append(summaries, toSummary(&groups[i]))
	}
	return summaries
}

// pageKey 分页参数的缓存键片段
func pageKey(page, pageSize int) string {
	return fmt.Sprintf("%d_%d", page, pageSize)
}
