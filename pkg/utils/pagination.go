package utils

import "math"

type Pagination struct {
	Page  int64
	Limit int64
}

// NewPagination normalizes page/limit: page < 1 becomes 1, limit < 1 becomes
// defaultLimit, and limit is clamped to maxLimit when maxLimit > 0. page is capped
// so that Offset stays a valid int32 on every platform.
func NewPagination(page, limit, defaultLimit, maxLimit int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	if limit > 0 && page > math.MaxInt32/limit {
		page = math.MaxInt32 / limit
	}
	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) Offset() int {
	return int((p.Page - 1) * p.Limit)
}

func (p Pagination) TotalPages(total int64) int64 {
	if p.Limit <= 0 {
		return 0
	}
	return int64(math.Ceil(float64(total) / float64(p.Limit)))
}
