// Package comment 实现评论业务逻辑
// 评论属于帖子，随帖子级联软删除，列表按时间最早在前
package comment

import (
	"context"

	"go.uber.org/zap"

	"campus_hub_server/internal/dao/mysql/repository"
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/dto/respond"
	"campus_hub_server/internal/infrastructure/mq"
	"campus_hub_server/internal/model"
	"campus_hub_server/pkg/enum/group/group_role_enum"
	"campus_hub_server/pkg/enum/group/member_status_enum"
	"campus_hub_server/pkg/enum/notification/notification_type_enum"
	"campus_hub_server/pkg/errorx"
	"campus_hub_server/pkg/util/random"
)

// commentService 评论业务逻辑实现
type commentService struct {
	repos     *repository.Repositories
	publisher mq.EventPublisher
}

// NewCommentService 构造函数
func NewCommentService(repos *repository.Repositories, publisher mq.EventPublisher) *commentService {
	return &commentService{
		repos:     repos,
		publisher: publisher,
	}
}

// publish 发布活动事件，发布器未注入时跳过
func (c *commentService) publish(event *mq.Event) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Publish(context.Background(), event); err != nil {
		zap.L().Error("publish activity event failed", zap.Error(err))
	}
}

// isModerator 判断用户是否为群内协管员以上
func (c *commentService) isModerator(groupUuid, userUuid string) (bool, error) {
	member, err := c.repos.GroupMember.FindByGroupAndUser(groupUuid, userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return member.Status == member_status_enum.JOINED &&
		group_role_enum.AtLeast(member.Role, group_role_enum.MODERATOR), nil
}

// CreateComment 发表评论
// 评论者须为帖子所在群组的成员，评论数与评论记录在同一事务内更新
func (c *commentService) CreateComment(authorUuid string, req request.CreateCommentRequest) (*respond.CommentRespond, error) {
	post, err := c.repos.Post.FindByUuid(req.PostUuid)
	if err != nil {
		return nil, err
	}
	member, err := c.repos.GroupMember.FindByGroupAndUser(post.GroupUuid, authorUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeForbidden, "仅群组成员可以评论")
		}
		return nil, err
	}
	if member.Status != member_status_enum.JOINED {
		return nil, errorx.New(errorx.CodeForbidden, "仅群组成员可以评论")
	}

	comment := &model.Comment{
		Uuid:       "C" + random.GetNowAndLenRandomString(11),
		PostUuid:   req.PostUuid,
		AuthorUuid: authorUuid,
		Content:    req.Content,
	}
	err = c.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Comment.Create(comment); err != nil {
			return err
		}
		return tx.Post.IncrementCommentCount(req.PostUuid, 1)
	})
	if err != nil {
		return nil, err
	}

	c.publish(mq.NewEvent(notification_type_enum.COMMENT_ADDED, post.AuthorUuid, authorUuid, req.PostUuid,
		"你的帖子收到了一条新评论"))

	author, err := c.repos.User.FindByUuid(authorUuid)
	if err != nil {
		return nil, err
	}
	return &respond.CommentRespond{
		Uuid:           comment.Uuid,
		PostUuid:       comment.PostUuid,
		AuthorUuid:     comment.AuthorUuid,
		AuthorNickname: author.Nickname,
		AuthorAvatar:   author.Avatar,
		Content:        comment.Content,
		CreatedAt:      comment.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// DeleteComment 删除评论
// 评论作者、帖子作者和协管员以上均可删除
func (c *commentService) DeleteComment(actorUuid, commentUuid string) error {
	comment, err := c.repos.Comment.FindByUuid(commentUuid)
	if err != nil {
		return err
	}
	post, err := c.repos.Post.FindByUuid(comment.PostUuid)
	if err != nil {
		return err
	}

	allowed := comment.AuthorUuid == actorUuid || post.AuthorUuid == actorUuid
	if !allowed {
		allowed, err = c.isModerator(post.GroupUuid, actorUuid)
		if err != nil {
			return err
		}
	}
	if !allowed {
		return errorx.New(errorx.CodeForbidden, "无权删除此评论")
	}

	return c.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Comment.SoftDelete(commentUuid); err != nil {
			return err
		}
		return tx.Post.IncrementCommentCount(comment.PostUuid, -1)
	})
}

// GetCommentList 获取帖子评论列表（最早在前）
func (c *commentService) GetCommentList(viewerUuid string, req request.GetCommentListRequest) (*respond.GetCommentListRespond, error) {
	if _, err := c.repos.Post.FindByUuid(req.PostUuid); err != nil {
		return nil, err
	}

	comments, total, err := c.repos.Comment.FindByPostUuid(req.PostUuid, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	// 批量查作者资料，避免 N+1
	authorUuids := make([]string, 0, len(comments))
	for i := range comments {
		authorUuids = append(authorUuids, comments[i].AuthorUuid)
	}
	authors, err := c.repos.User.FindByUuids(authorUuids)
	if err != nil {
		return nil, err
	}
	authorByUuid := make(map[string]model.UserInfo, len(authors))
	for _, a := range authors {
		authorByUuid[a.Uuid] = a
	}

	rsp := &respond.GetCommentListRespond{
		Comments:   make([]respond.CommentRespond, 0, len(comments)),
		Pagination: respond.NewPagination(total, req.Page, req.PageSize),
	}
	for i := range comments {
		item := respond.CommentRespond{
			Uuid:       comments[i].Uuid,
			PostUuid:   comments[i].PostUuid,
			AuthorUuid: comments[i].AuthorUuid,
			Content:    comments[i].Content,
			CreatedAt:  comments[i].CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if a, ok := authorByUuid[comments[i].AuthorUuid]; ok {
			item.AuthorNickname = a.Nickname
			item.AuthorAvatar = a.Avatar
		}
		rsp.Comments = append(rsp.Comments, item)
	}
	return rsp, nil
}
