// Package post 实现帖子与信息流业务逻辑
// 所有信息流查询统一经过可见性过滤器：按查看者在群内的身份
// （非成员/成员/协管员以上）组装查询条件，未审核帖子仅作者与协管员以上可见
package post

import (
	"context"

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
	"campus_hub_server/pkg/enum/notification/notification_type_enum"
	"campus_hub_server/pkg/enum/post/post_type_enum"
	"campus_hub_server/pkg/enum/post/post_visibility_enum"
	"campus_hub_server/pkg/errorx"
	"campus_hub_server/pkg/util/random"
)

// FriendChecker 好友关系查询
// 由社交 Service 实现，帖子层只关心这一个判断
type FriendChecker interface {
	AreFriends(userA, userB string) (bool, error)
}

// postService 帖子业务逻辑实现
type postService struct {
	repos     *repository.Repositories
	cache     myredis.AsyncCacheService
	publisher mq.EventPublisher
	friends   FriendChecker
}

// NewPostService 构造函数
func NewPostService(repos *repository.Repositories, cache myredis.AsyncCacheService, publisher mq.EventPublisher, friends FriendChecker) *postService {
	return &postService{
		repos:     repos,
		cache:     cache,
		publisher: publisher,
		friends:   friends,
	}
}

// publish 发布活动事件，发布器未注入时跳过
func (p *postService) publish(event *mq.Event) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(context.Background(), event); err != nil {
		zap.L().Error("publish activity event failed", zap.Error(err))
	}
}

// viewerContext 查看者在群内的身份快照
type viewerContext struct {
	role        int8
	joined      bool
	isModerator bool
}

// resolveViewer 推导查看者身份，未登录或无成员记录时返回零值
func (p *postService) resolveViewer(groupUuid, viewerUuid string) (viewerContext, error) {
	var vc viewerContext
	if viewerUuid == "" {
		return vc, nil
	}
	member, err := p.repos.GroupMember.FindByGroupAndUser(groupUuid, viewerUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return vc, nil
		}
		return vc, err
	}
	if member.Status != member_status_enum.JOINED {
		return vc, nil
	}
	vc.joined = true
	vc.role = member.Role
	vc.isModerator = group_role_enum.AtLeast(member.Role, group_role_enum.MODERATOR)
	return vc, nil
}

// requireFeedAccess 校验查看者是否有权查看群组信息流
// 私密/封闭群仅成员可见，公开群对所有人开放（非成员只能看到公开帖）
func (p *postService) requireFeedAccess(group *model.GroupInfo, vc viewerContext) error {
	if group.Privacy != group_privacy_enum.PUBLIC && !vc.joined {
		return errorx.New(errorx.CodeForbidden, "仅群组成员可以查看")
	}
	return nil
}

// ==================== 发布与编辑 ====================

// CreatePost 发布帖子
// 受群组发帖策略约束：AllowMemberPosting 关闭时普通成员不可发帖，
// RequirePostApproval 开启时普通成员的帖子进入待审核状态
func (p *postService) CreatePost(authorUuid string, req request.CreatePostRequest) (*respond.PostRespond, error) {
	if !post_visibility_enum.Valid(req.Visibility) {
		return nil, errorx.New(errorx.CodeInvalidParam, "非法的可见性级别")
	}
	if !post_type_enum.Valid(req.Type) {
		return nil, errorx.New(errorx.CodeInvalidParam, "非法的帖子类型")
	}

	group, err := p.repos.Group.FindByUuid(req.GroupUuid)
	if err != nil {
		return nil, err
	}
	vc, err := p.resolveViewer(req.GroupUuid, authorUuid)
	if err != nil {
		return nil, err
	}
	if !vc.joined {
		return nil, errorx.New(errorx.CodeForbidden, "仅群组成员可以发帖")
	}
	if !group.AllowMemberPosting && !vc.isModerator {
		return nil, errorx.New(errorx.CodeForbidden, "该群组仅允许协管员以上发帖")
	}

	post := &model.Post{
		Uuid:       "P" + random.GetNowAndLenRandomString(11),
		GroupUuid:  req.GroupUuid,
		AuthorUuid: authorUuid,
		Content:    req.Content,
		Visibility: req.Visibility,
		Type:       req.Type,
		IsApproved: !group.RequirePostApproval || vc.isModerator,
	}

	err = p.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Post.Create(post); err != nil {
			return err
		}
		return tx.Group.IncrementPostCount(req.GroupUuid)
	})
	if err != nil {
		return nil, err
	}

	author, err := p.repos.User.FindByUuid(authorUuid)
	if err != nil {
		return nil, err
	}
	rsp := p.buildPostRespond(post, author, vc, nil, nil, nil)
	return rsp, nil
}

// UpdatePost 编辑帖子（仅作者）
func (p *postService) UpdatePost(actorUuid string, req request.UpdatePostRequest) error {
	post, err := p.repos.Post.FindByUuid(req.PostUuid)
	if err != nil {
		return err
	}
	if post.AuthorUuid != actorUuid {
		return errorx.New(errorx.CodeForbidden, "仅作者可以编辑帖子")
	}

	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Visibility != nil {
		if !post_visibility_enum.Valid(*req.Visibility) {
			return errorx.New(errorx.CodeInvalidParam, "非法的可见性级别")
		}
		post.Visibility = *req.Visibility
	}
	return p.repos.Post.Update(post)
}

// DeletePost 删除帖子（作者或管理员以上）
// 软删除帖子并级联软删除其评论，群组帖子数 -1
func (p *postService) DeletePost(actorUuid, postUuid string) error {
	post, err := p.repos.Post.FindByUuid(postUuid)
	if err != nil {
		return err
	}
	if post.AuthorUuid != actorUuid {
		vc, err := p.resolveViewer(post.GroupUuid, actorUuid)
		if err != nil {
			return err
		}
		if !group_role_enum.AtLeast(vc.role, group_role_enum.ADMIN) {
			return errorx.New(errorx.CodeForbidden, "无权删除此帖子")
		}
	}

	return p.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Post.SoftDelete(postUuid); err != nil {
			return err
		}
		if err := tx.Comment.SoftDeleteByPostUuids([]string{postUuid}); err != nil {
			return err
		}
		return tx.Group.DecrementPostCount(post.GroupUuid)
	})
}

// ==================== 管理操作 ====================

// PinPost 置顶/取消置顶（协管员以上）
func (p *postService) PinPost(actorUuid string, req request.PinPostRequest) error {
	post, err := p.repos.Post.FindByUuid(req.PostUuid)
	if err != nil {
		return err
	}
	vc, err := p.resolveViewer(post.GroupUuid, actorUuid)
	if err != nil {
		return err
	}
	if !vc.isModerator {
		return errorx.New(errorx.CodeForbidden, "仅协管员以上可以置顶帖子")
	}
	if post.IsPinned == req.Pinned {
		return errorx.New(errorx.CodeConflict, "帖子置顶状态未变化")
	}
	return p.repos.Post.SetPinned(req.PostUuid, req.Pinned)
}

// ApprovePost 审核通过帖子（协管员以上）
func (p *postService) ApprovePost(actorUuid, postUuid string) error {
	post, err := p.repos.Post.FindByUuid(postUuid)
	if err != nil {
		return err
	}
	vc, err := p.resolveViewer(post.GroupUuid, actorUuid)
	if err != nil {
		return err
	}
	if !vc.isModerator {
		return errorx.New(errorx.CodeForbidden, "仅协管员以上可以审核帖子")
	}
	if post.IsApproved {
		return errorx.New(errorx.CodeConflict, "帖子已审核通过")
	}
	return p.repos.Post.SetApproved(postUuid, true)
}

// ==================== 互动 ====================

// LikePost 点赞帖子
// 点赞记录与计数更新在同一事务内，重复点赞返回冲突
func (p *postService) LikePost(userUuid, postUuid string) error {
	post, err := p.repos.Post.FindByUuid(postUuid)
	if err != nil {
		return err
	}
	if _, err := p.repos.Interaction.FindLike(postUuid, userUuid); err == nil {
		return errorx.New(errorx.CodeConflict, "已点赞过该帖子")
	} else if !errorx.IsNotFound(err) {
		return err
	}

	err = p.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Interaction.CreateLike(&model.Reaction{PostUuid: postUuid, UserUuid: userUuid}); err != nil {
			return err
		}
		return tx.Post.IncrementLikeCount(postUuid, 1)
	})
	if err != nil {
		return err
	}

	p.publish(mq.NewEvent(notification_type_enum.POST_LIKED, post.AuthorUuid, userUuid, postUuid,
		"你的帖子收到了一个赞"))
	return nil
}

// UnlikePost 取消点赞
func (p *postService) UnlikePost(userUuid, postUuid string) error {
	if _, err := p.repos.Post.FindByUuid(postUuid); err != nil {
		return err
	}
	if _, err := p.repos.Interaction.FindLike(postUuid, userUuid); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeConflict, "尚未点赞该帖子")
		}
		return err
	}
	return p.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Interaction.DeleteLike(postUuid, userUuid); err != nil {
			return err
		}
		return tx.Post.IncrementLikeCount(postUuid, -1)
	})
}

// SavePost 收藏帖子
func (p *postService) SavePost(userUuid, postUuid string) error {
	if _, err := p.repos.Post.FindByUuid(postUuid); err != nil {
		return err
	}
	if err := p.repos.Interaction.CreateSave(&model.SavedPost{PostUuid: postUuid, UserUuid: userUuid}); err != nil {
		if errorx.IsConflict(err) {
			return errorx.New(errorx.CodeConflict, "已收藏过该帖子")
		}
		return err
	}
	return nil
}

// UnsavePost 取消收藏
func (p *postService) UnsavePost(userUuid, postUuid string) error {
	return p.repos.Interaction.DeleteSave(postUuid, userUuid)
}

// MarkPostRead 标记帖子已读（幂等，重复标记不报错）
func (p *postService) MarkPostRead(userUuid, postUuid string) error {
	if _, err := p.repos.Post.FindByUuid(postUuid); err != nil {
		return err
	}
	return p.repos.Interaction.MarkRead(postUuid, userUuid)
}

// ==================== 查询 ====================

// GetPost 获取单个帖子
// 按群组隐私和帖子可见性逐级校验查看权限
func (p *postService) GetPost(viewerUuid, postUuid string) (*respond.PostRespond, error) {
	post, err := p.repos.Post.FindByUuid(postUuid)
	if err != nil {
		return nil, err
	}
	group, err := p.repos.Group.FindByUuid(post.GroupUuid)
	if err != nil {
		return nil, err
	}
	vc, err := p.resolveViewer(post.GroupUuid, viewerUuid)
	if err != nil {
		return nil, err
	}
	if err := p.requireFeedAccess(group, vc); err != nil {
		return nil, err
	}
	if err := p.checkPostVisible(post, viewerUuid, vc); err != nil {
		return nil, err
	}

	author, err := p.repos.User.FindByUuid(post.AuthorUuid)
	if err != nil {
		return nil, err
	}

	liked, err := p.repos.Interaction.LikedPostUuids(viewerUuid, []string{postUuid})
	if err != nil {
		return nil, err
	}
	saved, err := p.repos.Interaction.SavedPostUuids(viewerUuid, []string{postUuid})
	if err != nil {
		return nil, err
	}
	read, err := p.repos.Interaction.ReadPostUuids(viewerUuid, []string{postUuid})
	if err != nil {
		return nil, err
	}
	return p.buildPostRespondFor(post, author, viewerUuid, vc, toSet(liked), toSet(saved), toSet(read)), nil
}

// GetFeed 获取群组信息流（最新在前）
func (p *postService) GetFeed(viewerUuid string, req request.GetFeedRequest) (*respond.GetFeedRespond, error) {
	return p.getFeed(viewerUuid, req, false, false)
}

// GetPinnedFeed 获取置顶信息流
func (p *postService) GetPinnedFeed(viewerUuid string, req request.GetFeedRequest) (*respond.GetFeedRespond, error) {
	return p.getFeed(viewerUuid, req, true, false)
}

// GetMarketplaceFeed 获取集市（交易帖）信息流
func (p *postService) GetMarketplaceFeed(viewerUuid string, req request.GetFeedRequest) (*respond.GetFeedRespond, error) {
	return p.getFeed(viewerUuid, req, false, true)
}

// getFeed 统一的信息流查询流程：
//  1. 校验查看权限并推导查看者身份
//  2. 按身份组装可见性过滤条件交给 Repository
//  3. 批量查作者资料与互动状态，组装响应
func (p *postService) getFeed(viewerUuid string, req request.GetFeedRequest, pinnedOnly, buySellOnly bool) (*respond.GetFeedRespond, error) {
	group, err := p.repos.Group.FindByUuid(req.GroupUuid)
	if err != nil {
		return nil, err
	}
	vc, err := p.resolveViewer(req.GroupUuid, viewerUuid)
	if err != nil {
		return nil, err
	}
	if err := p.requireFeedAccess(group, vc); err != nil {
		return nil, err
	}

	posts, total, err := p.repos.Post.FindFeed(repository.FeedFilter{
		GroupUuid:     req.GroupUuid,
		ViewerUuid:    viewerUuid,
		MemberView:    vc.joined,
		ModeratorView: vc.isModerator,
		PinnedOnly:    pinnedOnly,
		BuySellOnly:   buySellOnly,
		Page:          req.Page,
		PageSize:      req.PageSize,
	})
	if err != nil {
		return nil, err
	}

	rsp := &respond.GetFeedRespond{
		Posts:      make([]respond.PostRespond, 0, len(posts)),
		Pagination: respond.NewPagination(total, req.Page, req.PageSize),
	}
	if len(posts) == 0 {
		return rsp, nil
	}

	// 批量查作者资料与查看者互动状态，避免 N+1
	postUuids := make([]string, 0, len(posts))
	authorUuids := make([]string, 0, len(posts))
	for i := range posts {
		postUuids = append(postUuids, posts[i].Uuid)
		authorUuids = append(authorUuids, posts[i].AuthorUuid)
	}
	authors, err := p.repos.User.FindByUuids(authorUuids)
	if err != nil {
		return nil, err
	}
	authorByUuid := make(map[string]*model.UserInfo, len(authors))
	for i := range authors {
		authorByUuid[authors[i].Uuid] = &authors[i]
	}

	var likedSet, savedSet, readSet map[string]struct{}
	if viewerUuid != "" {
		liked, err := p.repos.Interaction.LikedPostUuids(viewerUuid, postUuids)
		if err != nil {
			return nil, err
		}
		saved, err := p.repos.Interaction.SavedPostUuids(viewerUuid, postUuids)
		if err != nil {
			return nil, err
		}
		read, err := p.repos.Interaction.ReadPostUuids(viewerUuid, postUuids)
		if err != nil {
			return nil, err
		}
		likedSet, savedSet, readSet = toSet(liked), toSet(saved), toSet(read)
	}

	for i := range posts {
		rsp.Posts = append(rsp.Posts, *p.buildPostRespondFor(
			&posts[i], authorByUuid[posts[i].AuthorUuid], viewerUuid, vc, likedSet, savedSet, readSet))
	}
	return rsp, nil
}

// checkPostVisible 校验单帖可见性
// ONLY_ME 仅作者可见；未审核帖子仅作者与协管员以上可见；
// CONNECTIONS 对群内成员可见，群外查看者须与作者为好友
func (p *postService) checkPostVisible(post *model.Post, viewerUuid string, vc viewerContext) error {
	if post.AuthorUuid == viewerUuid || vc.isModerator {
		return nil
	}
	if post.Visibility == post_visibility_enum.ONLY_ME {
		return errorx.New(errorx.CodeForbidden, "无权查看此帖子")
	}
	if !post.IsApproved {
		return errorx.New(errorx.CodeForbidden, "帖子待审核")
	}
	if post.Visibility == post_visibility_enum.CONNECTIONS && !vc.joined {
		if viewerUuid == "" || p.friends == nil {
			return errorx.New(errorx.CodeForbidden, "仅好友可见")
		}
		ok, err := p.friends.AreFriends(viewerUuid, post.AuthorUuid)
		if err != nil {
			return err
		}
		if !ok {
			return errorx.New(errorx.CodeForbidden, "仅好友可见")
		}
	}
	return nil
}

// buildPostRespondFor 组装帖子响应，author 可为 nil（资料缺失时降级）
func (p *postService) buildPostRespondFor(post *model.Post, author *model.UserInfo, viewerUuid string, vc viewerContext, likedSet, savedSet, readSet map[string]struct{}) *respond.PostRespond {
	rsp := &respond.PostRespond{
		Uuid:          post.Uuid,
		GroupUuid:     post.GroupUuid,
		AuthorUuid:    post.AuthorUuid,
		Content:       post.Content,
		Visibility:    post.Visibility,
		Type:          post.Type,
		IsPinned:      post.IsPinned,
		IsApproved:    post.IsApproved,
		LikesCount:    post.LikesCount,
		CommentsCount: post.CommentsCount,
		CreatedAt:     post.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if author != nil {
		rsp.AuthorNickname = author.Nickname
		rsp.AuthorAvatar = author.Avatar
	}

	meta := &rsp.Meta
	meta.IsMine = viewerUuid != "" && post.AuthorUuid == viewerUuid
	meta.IsModerator = vc.isModerator
	meta.IsAdmin = group_role_enum.AtLeast(vc.role, group_role_enum.ADMIN)
	meta.IsOwner = vc.role == group_role_enum.OWNER
	meta.CanDelete = meta.IsMine || meta.IsAdmin
	if likedSet != nil {
		_, meta.IsLiked = likedSet[post.Uuid]
	}
	if savedSet != nil {
		_, meta.IsSaved = savedSet[post.Uuid]
	}
	if readSet != nil {
		_, meta.IsRead = readSet[post.Uuid]
	}
	return rsp
}

// buildPostRespond CreatePost 专用的组装入口（作者即查看者）
func (p *postService) buildPostRespond(post *model.Post, author *model.UserInfo, vc viewerContext, likedSet, savedSet, readSet map[string]struct{}) *respond.PostRespond {
	return p.buildPostRespondFor(post, author, post.AuthorUuid, vc, likedSet, savedSet, readSet)
}

func toSet(uuids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(uuids))
	for _, u := range uuids {
		set[u] = struct{}{}
	}
	return set
}
