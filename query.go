package pagenav

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// tParam is a single query segment. raw holds the segment exactly as it was
// found in the URL so that untouched parameters are written back verbatim.
type tParam struct {
	raw      string
	name     string
	value    string
	hasValue bool
}

func newParam(name, value string) tParam {
	return tParam{
		raw:      url.QueryEscape(name) + "=" + url.QueryEscape(value),
		name:     name,
		value:    value,
		hasValue: true,
	}
}

func parseParam(raw string) (tParam, error) {
	rawName, rawValue, hasValue := strings.Cut(raw, "=")

	name, err := url.QueryUnescape(rawName)
	if err != nil {
		return tParam{}, err
	}

	value, err := url.QueryUnescape(rawValue)
	if err != nil {
		return tParam{}, err
	}

	return tParam{
		raw:      raw,
		name:     name,
		value:    value,
		hasValue: hasValue,
	}, nil
}

// isBlank reports whether the parameter has no usable value: "a", "a=" and
// "a=%20" are all blank.
func (p tParam) isBlank() bool {
	return !p.hasValue || strings.TrimSpace(p.value) == ""
}

// tQueryURL splits a URL into the part before the query, the ordered query
// segments and the fragment (with its leading '#').
type tQueryURL struct {
	head     string
	params   []tParam
	fragment string
}

func parseQueryURL(rawURL string) (*tQueryURL, error) {
	if _, err := url.Parse(rawURL); err != nil {
		return nil, invalidURL(rawURL, err)
	}

	rest, fragment := rawURL, ""
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest, fragment = rest[:i], rest[i:]
	}

	head, rawQuery, _ := strings.Cut(rest, "?")
	ret := &tQueryURL{
		head:     head,
		fragment: fragment,
	}
	if rawQuery == "" {
		return ret, nil
	}

	for _, raw := range strings.Split(rawQuery, "&") {
		param, err := parseParam(raw)
		if err != nil {
			return nil, invalidURL(rawURL, err)
		}

		ret.params = append(ret.params, param)
	}

	return ret, nil
}

// set overwrites the first occurrence of name in place and drops the rest.
// An absent name is appended at the end of the query.
func (q *tQueryURL) set(name, value string) {
	param := newParam(name, value)
	replaced := false

	q.params = lo.FilterMap(q.params, func(item tParam, _ int) (tParam, bool) {
		if item.name != name {
			return item, true
		} else if replaced {
			return item, false
		}

		replaced = true
		return param, true
	})

	if !replaced {
		q.params = append(q.params, param)
	}
}

func (q *tQueryURL) remove(name string) {
	q.params = lo.Reject(q.params, func(item tParam, _ int) bool {
		return item.name == name
	})
}

func (q *tQueryURL) removeBlank() {
	q.params = lo.Reject(q.params, func(item tParam, _ int) bool {
		return item.isBlank()
	})
}

func (q *tQueryURL) get(name string) (string, bool) {
	param, ok := lo.Find(q.params, func(item tParam) bool {
		return item.name == name
	})

	return param.value, ok
}

// String assembles the URL back. A query left without parameters loses its '?'.
func (q *tQueryURL) String() string {
	var sb strings.Builder
	sb.WriteString(q.head)

	if len(q.params) > 0 {
		sb.WriteByte('?')
		sb.WriteString(strings.Join(lo.Map(q.params, func(item tParam, _ int) string {
			return item.raw
		}), "&"))
	}

	sb.WriteString(q.fragment)

	return sb.String()
}

// SetParam adds the query parameter name=value to rawURL, or overwrites it
// when already present. See SetParamIf.
func SetParam(rawURL, name, value string) (string, error) {
	return SetParamIf(rawURL, name, value, true)
}

// SetParamIf sets name=value when cond holds and both name and value are
// non-empty; otherwise rawURL is returned unchanged.
//
// The first occurrence of name keeps its position, later duplicates are
// dropped and an absent parameter is appended. Every other part of the URL,
// including the raw form of the other parameters and the fragment, is kept
// byte for byte.
//
// Example:
//
//	SetParamIf("/list?q=go&PageIndex=2#top", "PageIndex", "3", true)
//
// Result:
//
//	"/list?q=go&PageIndex=3#top"
func SetParamIf(rawURL, name, value string, cond bool) (string, error) {
	if rawURL == "" || !cond || name == "" || value == "" {
		return rawURL, nil
	}

	q, err := parseQueryURL(rawURL)
	if err != nil {
		return "", err
	}
	q.set(name, value)

	return q.String(), nil
}

// RemoveParam removes every occurrence of the query parameter name from rawURL.
func RemoveParam(rawURL, name string) (string, error) {
	return RemoveParamIf(rawURL, name, true)
}

// RemoveParamIf removes every occurrence of name when cond holds and name is
// non-empty; otherwise rawURL is returned unchanged.
func RemoveParamIf(rawURL, name string, cond bool) (string, error) {
	if rawURL == "" || !cond || name == "" {
		return rawURL, nil
	}

	q, err := parseQueryURL(rawURL)
	if err != nil {
		return "", err
	}
	q.remove(name)

	return q.String(), nil
}

// RemoveEmptyParams removes every query parameter whose value is absent,
// empty or whitespace only. Applying it twice gives the same result as once.
func RemoveEmptyParams(rawURL string) (string, error) {
	if rawURL == "" {
		return rawURL, nil
	}

	q, err := parseQueryURL(rawURL)
	if err != nil {
		return "", err
	}
	q.removeBlank()

	return q.String(), nil
}

// GetParam returns the unescaped value of the first occurrence of name.
func GetParam(rawURL, name string) (string, bool, error) {
	if rawURL == "" || name == "" {
		return "", false, nil
	}

	q, err := parseQueryURL(rawURL)
	if err != nil {
		return "", false, err
	}
	value, ok := q.get(name)

	return value, ok, nil
}
