package respond

import "campus_hub_server/pkg/constants"

// Pagination 分页元信息
// 所有列表接口统一返回此结构，前端据此渲染分页控件
type Pagination struct {
	TotalDocs   int64 `json:"totalDocs"`   // 记录总数
	Limit       int   `json:"limit"`       // 每页条数
	Page        int   `json:"page"`        // 当前页码（从 1 开始）
	TotalPages  int   `json:"totalPages"`  // 总页数
	HasNextPage bool  `json:"hasNextPage"` // 是否有下一页
	HasPrevPage bool  `json:"hasPrevPage"` // 是否有上一页
}

// NewPagination 根据总数和分页参数计算分页元信息
// page/pageSize 非法时按默认值修正，与 DAO 层的 normalizePage 保持一致
func NewPagination(totalDocs int64, page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = constants.DEFAULT_PAGE_SIZE
	}
	if pageSize > constants.MAX_PAGE_SIZE {
		pageSize = constants.MAX_PAGE_SIZE
	}

	totalPages := int((totalDocs + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	return Pagination{
		TotalDocs:   totalDocs,
		Limit:       pageSize,
		Page:        page,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
