// Package pagenav computes page-number pagination for server-rendered list
// views and lays out the navigation bar that goes with it.
//
// Overview
//
// A Pager holds the paging state of a single render pass: the current page,
// the page size and the total number of items. From it pagenav derives:
//   - VisiblePages: a bounded window of page numbers around the current page.
//   - URLFor: a canonical URL per page, rewritten from a base URL while every
//     other query parameter is kept as-is.
//   - Render: the ordered navigation entries (prev, first page, ellipsis,
//     window, ellipsis, last page, next).
//   - HTML: the entries as markup, <div class="pager">...</div>.
//
// Key concepts
//   - Pager is an immutable value. The With* methods return copies.
//   - Validate reports recoverable findings such as a page size outside the
//     allowed set; Normalize repairs them.
//   - RawPager binds PageIndex and PageSize from requests.
//   - SetParam, RemoveParam and RemoveEmptyParams edit query strings.
//   - Paginate, CountTotal and FetchPage apply the pager to gorm queries.
package pagenav
