package pagenav

import "github.com/samber/lo"

// VisiblePages returns the window of page numbers shown as direct links.
//
// The window keeps pageIndex in its middle when possible. Once it hits the
// first or the last page it slides toward the other side, so the full
// windowSize is used whenever pageCount >= windowSize.
//
// A pageIndex outside [1, pageCount] is clamped first.
//
// Example: pageIndex=1, pageCount=100, windowSize=5 gives [1 2 3 4 5];
// pageIndex=99 gives [96 97 98 99 100].
func VisiblePages(pageIndex, pageCount, windowSize int) []int {
	if pageCount <= 0 {
		return nil
	}
	windowSize = max(windowSize, 1)
	pageIndex = min(max(pageIndex, 1), pageCount)

	left := windowSize / 2
	start := max(1, pageIndex-left)
	end := min(pageCount, pageIndex+(windowSize-left-1))

	if start == 1 && end < pageCount {
		end = min(pageCount, start+windowSize-1)
	}
	if end == pageCount && start > 1 {
		start = max(1, end-windowSize+1)
	}

	return lo.RangeFrom(start, end-start+1)
}

// VisiblePages returns the page window for the current state of the pager.
func (p Pager) VisiblePages() []int {
	return VisiblePages(p.pageIndex, p.PageCount(), p.windowSize)
}
