package pagenav

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/go-querystring/query"
)

// RawPager is intended for request payloads and query strings. For proper
// binding, inline it:
//
//	type ListFilter struct {
//	    Paging pagenav.RawPager `json:",inline"`
//	    Query  string           `json:"q"`
//	}
//
// Zero values mean "use the default".
type RawPager struct {
	// PageIndex - requested 1-based page.
	PageIndex int `json:"pageIndex" url:"PageIndex,omitempty" validate:"omitempty,gte=1"`
	// PageSize - requested number of items per page.
	PageSize int `json:"pageSize" url:"PageSize,omitempty" validate:"omitempty,gt=0"`
}

// ParseRawPager reads the PageIndex and PageSize parameters from values.
// Missing or non-numeric values are left at zero.
func ParseRawPager(values url.Values) RawPager {
	pageIndex, _ := strconv.Atoi(values.Get(ParamPageIndex))
	pageSize, _ := strconv.Atoi(values.Get(ParamPageSize))

	return RawPager{
		PageIndex: pageIndex,
		PageSize:  pageSize,
	}
}

// Decode validates r and applies it on top of base. The page size is not
// checked against the allowed set here; that is Pager.Validate's job.
func (r RawPager) Decode(base Pager) (Pager, error) {
	if err := r.Validate(); err != nil {
		return base, fmt.Errorf("cannot decode pager: %w", err)
	}

	return base.
		WithPageIndex(r.PageIndex).
		WithPageSize(r.PageSize), nil
}

// Values encodes r into query parameters. Zero fields are omitted.
func (r RawPager) Values() (url.Values, error) {
	return query.Values(r)
}

// Raw returns the request values that reproduce the pager.
func (p Pager) Raw() RawPager {
	return RawPager{
		PageIndex: p.pageIndex,
		PageSize:  p.pageSize,
	}
}
