package pagenav

import "github.com/samber/lo"

const (
	DefaultPageSize   = 10
	DefaultWindowSize = 11
	DefaultPrevLabel  = "<<"
	DefaultNextLabel  = ">>"
)

// DefaultPageSizes is the page-size set a Pager accepts unless configured
// otherwise via Pager.WithPageSizes.
var DefaultPageSizes = []int{10, 20, 50}

// IsAllowedPageSize returns pageSize unchanged and true when it belongs to
// allowed. Otherwise it returns defaultSize and false.
func IsAllowedPageSize(pageSize int, defaultSize int, allowed []int) (int, bool) {
	if !lo.Contains(allowed, pageSize) {
		return defaultSize, false
	}

	return pageSize, true
}

// NormalizePageSize is IsAllowedPageSize without the verdict.
func NormalizePageSize(pageSize int, defaultSize int, allowed []int) int {
	ret, _ := IsAllowedPageSize(pageSize, defaultSize, allowed)
	return ret
}

// NormalizePageIndex clamps pageIndex into [1, pageCount]. A pageCount of
// zero only enforces the lower bound.
func NormalizePageIndex(pageIndex int, pageCount int) int {
	if pageIndex < 1 {
		return 1
	} else if pageCount > 0 && pageIndex > pageCount {
		return pageCount
	}

	return pageIndex
}
