package pagenav

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Validatable is implemented by values that can report their own findings.
// Validate returns nil or ValidationErrors.
type Validatable interface {
	Validate() error
}

var _validate *validator.Validate

func init() {
	_validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names, e.g. "pageSize" instead of "PageSize".
	_validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
}

// _fieldErrs maps a field to the finding reported when its tag check fails.
var _fieldErrs = map[string]error{
	"pageIndex": ErrPageIndexOutOfRange,
	"pageSize":  ErrInvalidPageSize,
}

// Validate checks the pager state. The findings are recoverable: it is up to
// the caller to reject the request or to fall back to Normalize.
//
//   - pageSize must be one of the allowed page sizes (ErrInvalidPageSize).
//   - pageIndex must not point past the last page (ErrPageIndexOutOfRange).
//     An empty dataset accepts any page index.
func (p Pager) Validate() error {
	var ret ValidationErrors

	if err := _validate.Var(p.pageSize, pageSizeTag(p.allowedPageSizes)); err != nil {
		ret = append(ret, &FieldError{
			Field: "pageSize",
			Value: p.pageSize,
			Err:   ErrInvalidPageSize,
		})
	}

	if pageCount := p.PageCount(); pageCount > 0 && p.pageIndex > pageCount {
		ret = append(ret, &FieldError{
			Field: "pageIndex",
			Value: p.pageIndex,
			Err:   ErrPageIndexOutOfRange,
		})
	}

	if len(ret) == 0 {
		return nil
	}

	return ret
}

// Validate checks the raw request values against their tags. Zero values are
// accepted and mean "use the default".
func (r RawPager) Validate() error {
	err := _validate.Struct(r)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	return ValidationErrors(lo.Map(validationErrs, func(e validator.FieldError, _ int) *FieldError {
		return &FieldError{
			Field: e.Field(),
			Value: e.Value(),
			Err:   _fieldErrs[e.Field()],
		}
	}))
}

func pageSizeTag(allowed []int) string {
	return "oneof=" + strings.Join(lo.Map(allowed, func(size int, _ int) string {
		return strconv.Itoa(size)
	}), " ")
}

var (
	_ Validatable = Pager{}
	_ Validatable = RawPager{}
)
