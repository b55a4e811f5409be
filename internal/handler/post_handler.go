// Package handler 提供 HTTP 请求处理器
// 本文件处理帖子与信息流相关的 API 请求
package handler

import (
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/service"
	"campus_hub_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// PostHandler 帖子请求处理器
type PostHandler struct {
	postSvc service.PostService
}

// NewPostHandler 创建帖子处理器实例
func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// CreatePost 发布帖子
// POST /post/createPost
// 请求体: request.CreatePostRequest
// 响应: respond.PostRespond
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req request.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.postSvc.CreatePost(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdatePost 编辑帖子（仅作者）
// POST /post/updatePost
// 请求体: request.UpdatePostRequest
// 响应: nil
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req request.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.postSvc.UpdatePost(c.GetString("user_id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeletePost 删除帖子
// POST /post/deletePost
// 请求体: request.DeletePostRequest
// 响应: nil
func (h *PostHandler) DeletePost(c *gin.Context) {
	var req request.DeletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.postSvc.DeletePost(c.GetString("user_id"), req.PostUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// PinPost 置顶/取消置顶帖子
// POST /post/pinPost
// 请求体: request.PinPostRequest
// 响应: nil
func (h *PostHandler) PinPost(c *gin.Context) {
	var req request.PinPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.postSvc.PinPost(c.GetString("user_id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ApprovePost 审核通过帖子
// POST /post/approvePost
// 请求体: request.ApprovePostRequest
// 响应: nil
func (h *PostHandler) ApprovePost(c *gin.Context) {
	var req request.ApprovePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.postSvc.ApprovePost(c.GetString("user_id"), req.PostUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// LikePost 点赞帖子
// POST /post/like
// 请求体: request.LikePostRequest
// 响应: nil
func (h *PostHandler) LikePost(c *gin.Context) {
	var req request.LikePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.postSvc.LikePost(c.GetString("user_id"), req.PostUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UnlikePost 取消点赞
// POST /post/unlike
// 请求体: request.LikePostRequest
// 响应: nil
func (h *PostHandler) UnlikePost(c *gin.Context) {
	var req request.LikePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.postSvc.UnlikePost(c.GetString("user_id"), req.PostUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// SavePost 收藏帖子
// POST /post/save
// 请求体: request.SavePostRequest
// 响应: nil
func (h *PostHandler) SavePost(c *gin.Context) {
	var req request.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.postSvc.SavePost(c.GetString("user_id"), req.PostUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UnsavePost 取消收藏
// POST /post/unsave
// 请求体: request.SavePostRequest
// 响应: nil
func (h *PostHandler) UnsavePost(c *gin.Context) {
	var req request.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.postSvc.UnsavePost(c.GetString("user_id"), req.PostUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// MarkPostRead 标记帖子已读
// POST /post/markRead
// 请求体: request.ReadPostRequest
// 响应: nil
func (h *PostHandler) MarkPostRead(c *gin.Context) {
	var req request.ReadPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.postSvc.MarkPostRead(c.GetString("user_id"), req.PostUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetPost 获取单个帖子
// GET /post/getPost?post_uuid=xxx
// 响应: respond.PostRespond
func (h *PostHandler) GetPost(c *gin.Context) {
	postUuid := c.Query("post_uuid")
	if postUuid == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := h.postSvc.GetPost(c.GetString("user_id"), postUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetFeed 获取群组信息流
// GET /post/feed?group_uuid=xxx&page=1&page_size=20
// 查询参数: request.GetFeedRequest
// 响应: respond.GetFeedRespond
func (h *PostHandler) GetFeed(c *gin.Context) {
	var req request.GetFeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.postSvc.GetFeed(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetPinnedFeed 获取置顶信息流
// GET /post/pinnedFeed?group_uuid=xxx
// 查询参数: request.GetFeedRequest
// 响应: respond.GetFeedRespond
func (h *PostHandler) GetPinnedFeed(c *gin.Context) {
	var req request.GetFeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.postSvc.GetPinnedFeed(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMarketplaceFeed 获取集市（交易帖）信息流
// GET /post/marketplaceFeed?group_uuid=xxx
// 查询参数: request.GetFeedRequest
// 响应: respond.GetFeedRespond
func (h *PostHandler) GetMarketplaceFeed(c *gin.Context) {
	var req request.GetFeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.postSvc.GetMarketplaceFeed(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
