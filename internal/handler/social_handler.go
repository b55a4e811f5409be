// Package handler 提供 HTTP 请求处理器
// 本文件处理社交关系相关的 API 请求（关注 + 好友）
package handler

import (
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/service"

	"github.com/gin-gonic/gin"
)

// SocialHandler 社交关系请求处理器
type SocialHandler struct {
	socialSvc service.SocialService
}

// NewSocialHandler 创建社交关系处理器实例
func NewSocialHandler(socialSvc service.SocialService) *SocialHandler {
	return &SocialHandler{socialSvc: socialSvc}
}

// Follow 关注用户
// POST /social/follow
// 请求体: request.FollowRequest
// 响应: nil
func (h *SocialHandler) Follow(c *gin.Context) {
	var req request.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.socialSvc.Follow(c.GetString("user_id"), req.UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// Unfollow 取消关注
// POST /social/unfollow
// 请求体: request.FollowRequest
// 响应: nil
func (h *SocialHandler) Unfollow(c *gin.Context) {
	var req request.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.socialSvc.Unfollow(c.GetString("user_id"), req.UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetFollowers 获取粉丝列表
// GET /social/followers?user_uuid=xxx&page=1&page_size=20
// 查询参数: request.GetSocialListRequest
// 响应: respond.GetSocialListRespond
func (h *SocialHandler) GetFollowers(c *gin.Context) {
	var req request.GetSocialListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if req.UserUuid == "" {
		req.UserUuid = c.GetString("user_id")
	}
	data, err := h.socialSvc.GetFollowers(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetFollowing 获取关注列表
// GET /social/following?user_uuid=xxx&page=1&page_size=20
// 查询参数: request.GetSocialListRequest
// 响应: respond.GetSocialListRespond
func (h *SocialHandler) GetFollowing(c *gin.Context) {
	var req request.GetSocialListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if req.UserUuid == "" {
		req.UserUuid = c.GetString("user_id")
	}
	data, err := h.socialSvc.GetFollowing(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ApplyFriend 发起好友申请
// POST /social/applyFriend
// 请求体: request.ApplyFriendRequest
// 响应: nil
func (h *SocialHandler) ApplyFriend(c *gin.Context) {
	var req request.ApplyFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.socialSvc.ApplyFriend(c.GetString("user_id"), req.UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// AcceptFriend 接受好友申请
// POST /social/acceptFriend
// 请求体: request.AcceptFriendRequest
// 响应: nil
func (h *SocialHandler) AcceptFriend(c *gin.Context) {
	var req request.AcceptFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.socialSvc.AcceptFriend(c.GetString("user_id"), req.UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RejectFriend 拒绝好友申请
// POST /social/rejectFriend
// 请求体: request.RejectFriendRequest
// 响应: nil
func (h *SocialHandler) RejectFriend(c *gin.Context) {
	var req request.RejectFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.socialSvc.RejectFriend(c.GetString("user_id"), req.UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteFriend 解除好友关系
// POST /social/deleteFriend
// 请求体: request.DeleteFriendRequest
// 响应: nil
func (h *SocialHandler) DeleteFriend(c *gin.Context) {
	var req request.DeleteFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.socialSvc.DeleteFriend(c.GetString("user_id"), req.UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetFriendList 获取好友列表
// GET /social/friends?user_uuid=xxx&page=1&page_size=20
// 查询参数: request.GetSocialListRequest
// 响应: respond.GetSocialListRespond
func (h *SocialHandler) GetFriendList(c *gin.Context) {
	var req request.GetSocialListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.socialSvc.GetFriendList(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetFriendRequestList 获取待处理好友申请列表
// GET /social/friendRequests
// 响应: respond.GetFriendRequestListRespond
func (h *SocialHandler) GetFriendRequestList(c *gin.Context) {
	data, err := h.socialSvc.GetFriendRequestList(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
