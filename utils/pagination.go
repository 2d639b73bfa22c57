package utils

import "strconv"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ParsePageParams normalizes page/limit query values into page, limit and
// offset. Out-of-range or unparsable values fall back to defaults.
func ParsePageParams(pageStr, limitStr string) (page, limit, offset int) {
	page, _ = strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(limitStr)
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset = (page - 1) * limit
	return page, limit, offset
}
