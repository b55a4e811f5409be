package request

// SearchRequest 全局搜索请求
// Scope 取值: "user"、"group"、"post"，为空时搜索全部三类
// 使用位置:
//   - internal/handler/search_handler.go: SearchHandler
//   - internal/service/search/service.go: Search
type SearchRequest struct {
	Keyword  string `form:"keyword" binding:"required,min=1,max=100"`
	Scope    string `form:"scope"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
