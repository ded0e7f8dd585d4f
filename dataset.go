package pagenav

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Page is a single page of a dataset together with the pager that selected it.
type Page[T any] struct {
	// Items result elements.
	Items []T
	// Pager paging state with the total number of elements filled in.
	Pager Pager
}

// Paginate applies LIMIT/OFFSET of the current page to a gorm query. Returns
// an error if the page size is not allowed or the offset of the page does not
// fit into an int.
func (p Pager) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if err := p.Validate(); errors.Is(err, ErrInvalidPageSize) {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	if p.offsetOverflows() {
		return nil, fmt.Errorf("cannot paginate: %w", &FieldError{
			Field: "pageIndex",
			Value: p.pageIndex,
			Err:   ErrPageIndexOutOfRange,
		})
	}

	return db.Offset(p.Offset()).Limit(p.Limit()), nil
}

// CountTotal counts the rows matched by db and returns p with the total
// count filled in. db is not modified and can be reused for the page query.
func CountTotal(db *gorm.DB, p Pager) (Pager, error) {
	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return p, fmt.Errorf("cannot count total: %w", err)
	}

	return p.WithTotalCount(total), nil
}

// FetchPage counts the dataset, then loads the page selected by p.
//
// Usage:
//
//	page, err := pagenav.FetchPage[User](db.Model(&User{}).Order("id"), pager)
func FetchPage[T any](db *gorm.DB, p Pager) (*Page[T], error) {
	p, err := CountTotal(db, p)
	if err != nil {
		return nil, err
	}

	paged, err := p.Paginate(db.Session(&gorm.Session{}))
	if err != nil {
		return nil, err
	}

	var items []T
	if err = paged.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("cannot fetch page %d: %w", p.pageIndex, err)
	}

	return &Page[T]{
		Items: items,
		Pager: p,
	}, nil
}
