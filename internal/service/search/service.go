// Package search 实现全局搜索业务逻辑
// 按关键词搜索用户/群组/帖子，结果在 Redis 中短时缓存，
// 缓存键按关键词、范围和分页组合，热词重复搜索直接命中
package search

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"campus_hub_server/internal/dao/mysql/repository"
	myredis "campus_hub_server/internal/dao/redis"
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/dto/respond"
	"campus_hub_server/pkg/constants"
	"campus_hub_server/pkg/errorx"
)

// 搜索范围取值
const (
	ScopeUser  = "user"
	ScopeGroup = "group"
	ScopePost  = "post"
)

// searchService 搜索业务逻辑实现
type searchService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService
}

// NewSearchService 构造函数
func NewSearchService(repos *repository.Repositories, cache myredis.AsyncCacheService) *searchService {
	return &searchService{
		repos: repos,
		cache: cache,
	}
}

// Search 按关键词搜索
// scope 为空时三类一起搜，分页对每类独立生效
func (s *searchService) Search(req request.SearchRequest) (*respond.SearchRespond, error) {
	switch req.Scope {
	case "", ScopeUser, ScopeGroup, ScopePost:
	default:
		return nil, errorx.New(errorx.CodeInvalidParam, "非法的搜索范围")
	}

	cacheKey := fmt.Sprintf("search_%s_%s_%d_%d", req.Scope, req.Keyword, req.Page, req.PageSize)
	if s.cache != nil {
		if cached, err := s.cache.Get(context.Background(), cacheKey); err == nil && cached != "" {
			var rsp respond.SearchRespond
			if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
				return &rsp, nil
			}
		}
	}

	rsp := &respond.SearchRespond{
		Users:  []respond.SearchUserItem{},
		Groups: []respond.SearchGroupItem{},
		Posts:  []respond.SearchPostItem{},
	}
	// 分页元信息取自 scope 对应的类目；全类目搜索时取结果最多的一类
	var maxTotal int64

	if req.Scope == "" || req.Scope == ScopeUser {
		users, total, err := s.repos.User.SearchByKeyword(req.Keyword, req.Page, req.PageSize)
		if err != nil {
			return nil, err
		}
		for i := range users {
			rsp.Users = append(rsp.Users, respond.SearchUserItem{
				Uuid:     users[i].Uuid,
				Nickname: users[i].Nickname,
				Fullname: users[i].Fullname,
				Avatar:   users[i].Avatar,
			})
		}
		if total > maxTotal {
			maxTotal = total
		}
	}

	if req.Scope == "" || req.Scope == ScopeGroup {
		groups, total, err := s.repos.Group.SearchByKeyword(req.Keyword, req.Page, req.PageSize)
		if err != nil {
			return nil, err
		}
		for i := range groups {
			rsp.Groups = append(rsp.Groups, respond.SearchGroupItem{
				Uuid:         groups[i].Uuid,
				Name:         groups[i].Name,
				Slug:         groups[i].Slug,
				Avatar:       groups[i].Avatar,
				MembersCount: groups[i].MembersCount,
			})
		}
		if total > maxTotal {
			maxTotal = total
		}
	}

	if req.Scope == "" || req.Scope == ScopePost {
		posts, total, err := s.repos.Post.SearchByKeyword(req.Keyword, req.Page, req.PageSize)
		if err != nil {
			return nil, err
		}
		for i := range posts {
			rsp.Posts = append(rsp.Posts, respond.SearchPostItem{
				Uuid:       posts[i].Uuid,
				GroupUuid:  posts[i].GroupUuid,
				AuthorUuid: posts[i].AuthorUuid,
				Content:    posts[i].Content,
				CreatedAt:  posts[i].CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		if total > maxTotal {
			maxTotal = total
		}
	}

	rsp.Pagination = respond.NewPagination(maxTotal, req.Page, req.PageSize)

	if s.cache != nil {
		data, err := json.Marshal(rsp)
		if err == nil {
			s.cache.SubmitTask(func() {
				if err := s.cache.Set(context.Background(), cacheKey, string(data), constants.SEARCH_CACHE_TTL); err != nil {
					zap.L().Error(err.Error())
				}
			})
		}
	}
	return rsp, nil
}
