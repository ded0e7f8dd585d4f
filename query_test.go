package pagenav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SetParamIf(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		param string
		value string
		cond  bool
		want  string
	}{
		{"append to url without query", "https://x/list", "PageIndex", "2", true, "https://x/list?PageIndex=2"},
		{"overwrite keeps position", "https://x/list?PageIndex=2&q=go", "PageIndex", "3", true, "https://x/list?PageIndex=3&q=go"},
		{"duplicates collapse to first", "/l?a=1&b=2&a=3", "a", "9", true, "/l?a=9&b=2"},
		{"fragment preserved", "/l?q=go#top", "p", "2", true, "/l?q=go&p=2#top"},
		{"other params kept raw", "/l?q=a%20b&x=1", "x", "2", true, "/l?q=a%20b&x=2"},
		{"value escaped", "/l", "q", "a b&c", true, "/l?q=a+b%26c"},
		{"relative url", "list?x=1", "p", "4", true, "list?x=1&p=4"},
		{"cond false is noop", "/l?a=1", "a", "2", false, "/l?a=1"},
		{"empty value is noop", "/l?a=1", "a", "", true, "/l?a=1"},
		{"empty name is noop", "/l?a=1", "", "2", true, "/l?a=1"},
		{"empty url passes through", "", "a", "2", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SetParamIf(tt.url, tt.param, tt.value, tt.cond)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_RemoveParamIf(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		param string
		cond  bool
		want  string
	}{
		{"last param drops question mark", "https://x/list?PageIndex=2", "PageIndex", true, "https://x/list"},
		{"every occurrence removed", "/l?a=1&PageIndex=2&b=&PageIndex=3", "PageIndex", true, "/l?a=1&b="},
		{"escaped name matched", "/l?Page%49ndex=2&a=1", "PageIndex", true, "/l?a=1"},
		{"fragment preserved", "/l?a=1#frag", "a", true, "/l#frag"},
		{"absent param is noop", "/l?a=1", "b", true, "/l?a=1"},
		{"cond false is noop", "/l?a=1", "a", false, "/l?a=1"},
		{"empty name is noop", "/l?a=1", "", true, "/l?a=1"},
		{"empty url passes through", "", "a", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RemoveParamIf(tt.url, tt.param, tt.cond)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_RemoveEmptyParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"mixed blanks", "/l?a=&b=1&c&d=%20&e=+&&f=x", "/l?b=1&f=x"},
		{"nothing to remove", "https://x/list?q=go&PageSize=20", "https://x/list?q=go&PageSize=20"},
		{"all blank", "https://x/list?q=&PageIndex=#top", "https://x/list#top"},
		{"dangling question mark", "https://x/list?", "https://x/list"},
		{"no query", "https://x/list", "https://x/list"},
		{"empty url", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RemoveEmptyParams(tt.url)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			again, err := RemoveEmptyParams(got)
			require.NoError(t, err)
			require.Equal(t, got, again, "must be idempotent")
		})
	}
}

func Test_QueryEditing_InvalidURL(t *testing.T) {
	urls := []string{
		"http://[::1",
		"/l?a%zz=1",
		"/l?a=%zz",
	}

	for _, u := range urls {
		t.Run(u, func(t *testing.T) {
			_, err := SetParam(u, "a", "1")
			assert.ErrorIs(t, err, ErrInvalidURL)

			_, err = RemoveParam(u, "a")
			assert.ErrorIs(t, err, ErrInvalidURL)

			_, err = RemoveEmptyParams(u)
			assert.ErrorIs(t, err, ErrInvalidURL)

			_, _, err = GetParam(u, "a")
			assert.ErrorIs(t, err, ErrInvalidURL)
		})
	}
}

func Test_GetParam(t *testing.T) {
	value, ok, err := GetParam("/l?q=a+b&q=c", "q")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a b", value)

	_, ok, err = GetParam("/l?q=a", "p")
	require.NoError(t, err)
	require.False(t, ok)
}
