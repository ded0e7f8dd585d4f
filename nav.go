package pagenav

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/samber/lo"
)

// EntryKind defines the role of a navigation entry.
type EntryKind string

const (
	KindPrevLink          EntryKind = "prev"
	KindPageLink          EntryKind = "page"
	KindCurrentPageMarker EntryKind = "current"
	KindEllipsis          EntryKind = "ellipsis"
	KindNextLink          EntryKind = "next"
)

// EllipsisLabel is the label of the gap between an edge page and the window.
const EllipsisLabel = "..."

// Entry is a single item of the navigation bar.
type Entry struct {
	Kind EntryKind `json:"kind"`
	// Page is the target page of links and the current page for the marker.
	// Zero for ellipses.
	Page int `json:"page,omitempty"`
	// Label is the display text.
	Label string `json:"label"`
	// URL is set for links only.
	URL string `json:"url,omitempty"`
}

// IsLink returns true for entries that point to another page.
func (e Entry) IsLink() bool {
	return e.Kind == KindPrevLink || e.Kind == KindPageLink || e.Kind == KindNextLink
}

// IsCurrent returns true for the current page marker.
func (e Entry) IsCurrent() bool {
	return e.Kind == KindCurrentPageMarker
}

// Renderable is implemented by values that can lay out page navigation.
type Renderable interface {
	Render(baseURL string) ([]Entry, error)
	HTML(baseURL string) (template.HTML, error)
}

var _ Renderable = Pager{}

// tNavBuilder accumulates entries and keeps the first error it meets. An
// empty baseURL is resolved on the first link.
type tNavBuilder struct {
	pager   Pager
	baseURL string
	entries []Entry
	err     error
}

func (b *tNavBuilder) link(kind EntryKind, page int, label string) {
	if b.err != nil {
		return
	}

	if b.baseURL == "" {
		b.baseURL, b.err = b.pager.resolveBaseURL("")
		if b.err != nil {
			return
		}
	}

	u, err := b.pager.URLFor(page, b.baseURL)
	if err != nil {
		b.err = fmt.Errorf("cannot build url for page %d: %w", page, err)
		return
	}

	b.entries = append(b.entries, Entry{
		Kind:  kind,
		Page:  page,
		Label: label,
		URL:   u,
	})
}

func (b *tNavBuilder) page(page int) {
	if page == b.pager.pageIndex {
		b.entries = append(b.entries, Entry{
			Kind:  KindCurrentPageMarker,
			Page:  page,
			Label: strconv.Itoa(page),
		})
		return
	}

	b.link(KindPageLink, page, strconv.Itoa(page))
}

func (b *tNavBuilder) ellipsis() {
	b.entries = append(b.entries, Entry{
		Kind:  KindEllipsis,
		Label: EllipsisLabel,
	})
}

// Render lays out the navigation bar for the current page:
//
//	[prev] [1 ...] window [... last] [next]
//
//   - prev and next appear only when such a page exists.
//   - The first page and a leading ellipsis appear when the window does not
//     start at page 1 and the previous page is not page 1 itself.
//   - The last page and a trailing ellipsis appear when the window does not
//     end at the last page and the next page is not the last page itself.
//
// An empty baseURL is resolved through the pager URLSource, once, and only
// if some entry needs a URL.
func (p Pager) Render(baseURL string) ([]Entry, error) {
	b := &tNavBuilder{pager: p, baseURL: baseURL}

	pages := p.VisiblePages()
	pageCount := p.PageCount()

	if p.HasPrev() {
		b.link(KindPrevLink, p.PrevPage(), p.prevLabel)
	}

	if len(pages) > 0 {
		if lo.Min(pages) != 1 && p.pageIndex-1 != 1 {
			b.page(1)
			b.ellipsis()
		}

		for _, page := range pages {
			b.page(page)
		}

		if lo.Max(pages) != pageCount && p.pageIndex+1 != pageCount {
			b.ellipsis()
			b.page(pageCount)
		}
	}

	if p.HasNext() {
		b.link(KindNextLink, p.NextPage(), p.nextLabel)
	}

	if b.err != nil {
		return nil, b.err
	}

	return b.entries, nil
}
