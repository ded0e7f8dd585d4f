package pagenav

import "strconv"

// Query parameter names used in generated page URLs.
const (
	ParamPageIndex = "PageIndex"
	ParamPageSize  = "PageSize"
)

// URLFor returns the URL of page, built from baseURL. An empty baseURL is
// replaced by the pager URLSource.
//
// The first page never carries the PageIndex parameter, the PageSize
// parameter is dropped while the default page size is active, and blank
// parameters are removed, so every page has exactly one canonical URL:
//
//	p := pagenav.NewPagerFor(2, 10, 30)
//	p.URLFor(1, "https://x/list?PageIndex=2&q=")  // "https://x/list"
//	p.URLFor(3, "https://x/list?PageIndex=2&q=")  // "https://x/list?PageIndex=3"
func (p Pager) URLFor(page int, baseURL string) (string, error) {
	rawURL, err := p.resolveBaseURL(baseURL)
	if err != nil {
		return "", err
	}

	page = max(page, 1)

	q, err := parseQueryURL(rawURL)
	if err != nil {
		return "", err
	}

	if page == 1 {
		q.remove(ParamPageIndex)
	} else {
		q.set(ParamPageIndex, strconv.Itoa(page))
	}

	if p.pageSize == p.defaultPageSize {
		q.remove(ParamPageSize)
	}
	q.removeBlank()

	return q.String(), nil
}

// PrevURL returns the URL of the previous page.
func (p Pager) PrevURL(baseURL string) (string, error) {
	return p.URLFor(p.PrevPage(), baseURL)
}

// NextURL returns the URL of the next page.
func (p Pager) NextURL(baseURL string) (string, error) {
	return p.URLFor(p.NextPage(), baseURL)
}

func (p Pager) resolveBaseURL(baseURL string) (string, error) {
	if baseURL != "" {
		return baseURL, nil
	}

	if p.urlSource != nil {
		if current := p.urlSource(); current != "" {
			return current, nil
		}
	}

	return "", ErrNoBaseURL
}
