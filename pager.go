package pagenav

import (
	"math"
	"slices"

	"github.com/samber/lo"
)

// URLSource returns the URL of the page being rendered. It is consulted only
// when a caller does not pass an explicit base URL.
type URLSource func() string

// Pager holds the paging state of a single list render: the current page,
// its size, the total number of items and how navigation is laid out.
//
// Pager is a value. The With* methods return a modified copy and never touch
// the receiver, so a Pager can be shared freely between goroutines. Build a
// new one per request:
//
//	p := pagenav.NewPager().
//		WithPageIndex(3).
//		WithPageSize(20).
//		WithTotalCount(total)
type Pager struct {
	pageIndex        int
	pageSize         int
	totalCount       int64
	allowedPageSizes []int
	defaultPageSize  int
	windowSize       int
	prevLabel        string
	nextLabel        string
	urlSource        URLSource
}

// NewPager returns a Pager on the first page with every setting at its default.
func NewPager() Pager {
	return Pager{
		pageIndex:        1,
		pageSize:         DefaultPageSize,
		allowedPageSizes: slices.Clone(DefaultPageSizes),
		defaultPageSize:  DefaultPageSize,
		windowSize:       DefaultWindowSize,
		prevLabel:        DefaultPrevLabel,
		nextLabel:        DefaultNextLabel,
	}
}

// NewPagerFor is a shorthand for NewPager().WithPageIndex(pageIndex).
// WithPageSize(pageSize).WithTotalCount(totalCount). Zero values fall back to
// the defaults.
func NewPagerFor(pageIndex, pageSize int, totalCount int64) Pager {
	return NewPager().
		WithPageIndex(pageIndex).
		WithPageSize(pageSize).
		WithTotalCount(totalCount)
}

// WithPageIndex sets the current, 1-based page. Values below 1 become 1.
func (p Pager) WithPageIndex(pageIndex int) Pager {
	p.pageIndex = max(pageIndex, 1)

	return p
}

// WithPageSize sets the number of items per page.
//
// IMPORTANT:
//   - A non-positive size falls back to the default page size.
//   - A positive size outside the allowed set is kept and reported by Validate.
func (p Pager) WithPageSize(pageSize int) Pager {
	p.pageSize = lo.Ternary(pageSize > 0, pageSize, p.defaultPageSize)

	return p
}

// WithTotalCount sets the number of items across all pages.
func (p Pager) WithTotalCount(totalCount int64) Pager {
	p.totalCount = max(totalCount, 0)

	return p
}

// WithWindowSize sets the maximum number of page links shown at once.
// Values below 1 fall back to DefaultWindowSize.
func (p Pager) WithWindowSize(windowSize int) Pager {
	p.windowSize = lo.Ternary(windowSize >= 1, windowSize, DefaultWindowSize)

	return p
}

// WithLabels sets the text of the prev and next controls. Empty labels keep
// the current ones.
func (p Pager) WithLabels(prev, next string) Pager {
	p.prevLabel = lo.Ternary(prev != "", prev, p.prevLabel)
	p.nextLabel = lo.Ternary(next != "", next, p.nextLabel)

	return p
}

// WithPageSizes replaces the allowed page sizes and the default one. The
// default size is added to the allowed set when missing. A page size equal to
// the old default follows the new default.
func (p Pager) WithPageSizes(defaultSize int, allowed ...int) Pager {
	if defaultSize <= 0 {
		return p
	}

	sizes := lo.Uniq(lo.Filter(append(slices.Clone(allowed), defaultSize), func(size int, _ int) bool {
		return size > 0
	}))
	slices.Sort(sizes)

	if p.pageSize == p.defaultPageSize {
		p.pageSize = defaultSize
	}
	p.allowedPageSizes = sizes
	p.defaultPageSize = defaultSize

	return p
}

// WithURLSource sets the provider of the current URL, used whenever a base
// URL is not passed explicitly.
func (p Pager) WithURLSource(source URLSource) Pager {
	p.urlSource = source

	return p
}

// GetPageIndex returns the current 1-based page.
func (p Pager) GetPageIndex() int {
	return p.pageIndex
}

// GetPageSize returns the number of items per page.
func (p Pager) GetPageSize() int {
	return p.pageSize
}

func (p Pager) GetTotalCount() int64 {
	return p.totalCount
}

func (p Pager) GetWindowSize() int {
	return p.windowSize
}

func (p Pager) GetDefaultPageSize() int {
	return p.defaultPageSize
}

// GetPageSizes returns a copy of the allowed page sizes.
func (p Pager) GetPageSizes() []int {
	return slices.Clone(p.allowedPageSizes)
}

func (p Pager) GetPrevLabel() string {
	return p.prevLabel
}

func (p Pager) GetNextLabel() string {
	return p.nextLabel
}

// PageCount returns ceil(totalCount / pageSize), zero for an empty dataset.
func (p Pager) PageCount() int {
	if p.totalCount <= 0 || p.pageSize <= 0 {
		return 0
	}

	size := int64(p.pageSize)

	return int((p.totalCount + size - 1) / size)
}

// HasPrev returns true if there is a page before the current one.
func (p Pager) HasPrev() bool {
	return p.pageIndex > 1
}

// HasNext returns true if there is a page after the current one.
func (p Pager) HasNext() bool {
	return p.pageIndex < p.PageCount()
}

// PrevPage returns the number of the previous page, never below 1.
func (p Pager) PrevPage() int {
	return max(p.pageIndex-1, 1)
}

// NextPage returns the number of the next page, never past the last one
// unless the dataset is empty.
func (p Pager) NextPage() int {
	return lo.Ternary(p.HasNext(), p.pageIndex+1, p.pageIndex)
}

// Offset returns the number of items before the current page. It saturates
// at math.MaxInt when the page index is too large to address.
func (p Pager) Offset() int {
	if p.offsetOverflows() {
		return math.MaxInt
	}

	return (p.pageIndex - 1) * p.pageSize
}

func (p Pager) offsetOverflows() bool {
	return p.pageSize > 0 && p.pageIndex-1 > math.MaxInt/p.pageSize
}

// Limit returns the number of items on the current page.
func (p Pager) Limit() int {
	return p.pageSize
}

// Normalize returns a copy that passes Validate: an unknown page size is
// replaced by the default one and the page index is clamped to the last page.
func (p Pager) Normalize() Pager {
	p.pageSize = NormalizePageSize(p.pageSize, p.defaultPageSize, p.allowedPageSizes)
	p.pageIndex = NormalizePageIndex(p.pageIndex, p.PageCount())

	return p
}
