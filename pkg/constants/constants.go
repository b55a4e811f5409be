package constants

import "time"

const (
	CHANNEL_SIZE               = 100 // 事件通道大小
	DEFAULT_PAGE_SIZE          = 20  // 默认分页大小
	MAX_PAGE_SIZE              = 100 // 最大分页大小
	REFRESH_TOKEN_EXPIRY_HOURS = 168 // Refresh Token 有效期（小时），168小时 = 7天

	SEARCH_CACHE_TTL     = 2 * time.Minute  // 搜索结果缓存有效期
	GROUP_INFO_CACHE_TTL = 30 * time.Minute // 群组信息缓存有效期
	GROUP_LIST_CACHE_TTL = 30 * time.Minute // 群组列表缓存有效期

	SLUG_MAX_RETRY = 5 // slug 去重最大重试次数
)
