// Package handler 提供 HTTP 请求处理器
// 本文件处理全局搜索 API 请求
package handler

import (
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler 搜索请求处理器
type SearchHandler struct {
	searchSvc service.SearchService
}

// NewSearchHandler 创建搜索处理器实例
func NewSearchHandler(searchSvc service.SearchService) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc}
}

// Search 全局搜索
// GET /search?keyword=xxx&scope=user&page=1&page_size=20
// 查询参数: request.SearchRequest
// 响应: respond.SearchRespond
func (h *SearchHandler) Search(c *gin.Context) {
	var req request.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.searchSvc.Search(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
