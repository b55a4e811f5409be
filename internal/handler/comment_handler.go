// Package handler 提供 HTTP 请求处理器
// 本文件处理评论相关的 API 请求
package handler

import (
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler 评论请求处理器
type CommentHandler struct {
	commentSvc service.CommentService
}

// NewCommentHandler 创建评论处理器实例
func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// CreateComment 发表评论
// POST /comment/createComment
// 请求体: request.CreateCommentRequest
// 响应: respond.CommentRespond
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req request.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.commentSvc.CreateComment(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteComment 删除评论
// POST /comment/deleteComment
// 请求体: request.DeleteCommentRequest
// 响应: nil
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	var req request.DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.commentSvc.DeleteComment(c.GetString("user_id"), req.CommentUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetCommentList 获取帖子评论列表
// GET /comment/list?post_uuid=xxx&page=1&page_size=20
// 查询参数: request.GetCommentListRequest
// 响应: respond.GetCommentListRespond
func (h *CommentHandler) GetCommentList(c *gin.Context) {
	var req request.GetCommentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.commentSvc.GetCommentList(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
