package respond

import "testing"

func TestNewPagination(t *testing.T) {
	p := NewPagination(45, 2, 10)
	if p.TotalDocs != 45 || p.TotalPages != 5 || p.Page != 2 || p.Limit != 10 {
		t.Fatalf("pagination = %+v", p)
	}
	if !p.HasNextPage || !p.HasPrevPage {
		t.Fatalf("page 2 of 5 hasNext=%v hasPrev=%v", p.HasNextPage, p.HasPrevPage)
	}
}

func TestNewPaginationClampsParams(t *testing.T) {
	// 非法页码归一到第 1 页，非法页大小取默认值
	p := NewPagination(5, 0, 0)
	if p.Page != 1 || p.Limit == 0 {
		t.Fatalf("clamped pagination = %+v", p)
	}
	if p.HasPrevPage {
		t.Fatalf("page 1 hasPrev=true")
	}

	// 超过上限的页大小被截断
	p = NewPagination(1000, 1, 100000)
	if p.Limit > 100 {
		t.Fatalf("limit=%d, want clamped", p.Limit)
	}
}

func TestNewPaginationEmptyResult(t *testing.T) {
	p := NewPagination(0, 1, 20)
	if p.TotalPages != 1 || p.HasNextPage {
		t.Fatalf("empty pagination = %+v", p)
	}
}
