package request

// GetFeedRequest 获取群组信息流请求
// 同一结构供普通信息流、置顶信息流和集市信息流三个接口复用
// 使用位置:
//   - internal/handler/post_handler.go: GetFeedHandler, GetPinnedFeedHandler, GetMarketplaceFeedHandler
//   - internal/service/post/service.go: GetFeed, GetPinnedFeed, GetMarketplaceFeed
type GetFeedRequest struct {
	GroupUuid string `form:"group_uuid" binding:"required"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}
