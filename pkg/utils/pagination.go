package utils

import "vidtube.com/pkg/constants"

// NormalizePage falls back to the defaults when page or limit are missing or
// not positive. No upper bound is enforced on limit.
func NormalizePage(page, limit int64) (int64, int64) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	return page, limit
}

// TotalPages computes ceil(count/limit).
func TotalPages(count, limit int64) int64 {
	if limit < 1 {
		return 0
	}
	return (count + limit - 1) / limit
}
