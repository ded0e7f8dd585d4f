package pagenav

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_VisiblePages(t *testing.T) {
	tests := []struct {
		name       string
		pageIndex  int
		pageCount  int
		windowSize int
		want       []int
	}{
		{"window wider than dataset", 5, 10, 11, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"first page slides right", 1, 100, 5, []int{1, 2, 3, 4, 5}},
		{"second page slides right", 2, 100, 5, []int{1, 2, 3, 4, 5}},
		{"centered odd window", 50, 100, 5, []int{48, 49, 50, 51, 52}},
		{"centered even window", 50, 100, 4, []int{48, 49, 50, 51}},
		{"near end slides left", 99, 100, 5, []int{96, 97, 98, 99, 100}},
		{"last page slides left", 100, 100, 5, []int{96, 97, 98, 99, 100}},
		{"single page", 1, 1, 11, []int{1}},
		{"window of one", 7, 10, 1, []int{7}},
		{"non positive window acts as one", 7, 10, 0, []int{7}},
		{"index past last page", 20, 10, 3, []int{8, 9, 10}},
		{"empty dataset", 1, 0, 11, nil},
		{"max int index", math.MaxInt, 10, 3, []int{8, 9, 10}},
		{"max int index wide window", math.MaxInt, 10, 11, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"index below first page", -5, 10, 3, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, VisiblePages(tt.pageIndex, tt.pageCount, tt.windowSize))
		})
	}
}

func Test_VisiblePages_Properties(t *testing.T) {
	for pageCount := 0; pageCount <= 30; pageCount++ {
		for windowSize := 1; windowSize <= 12; windowSize++ {
			for pageIndex := 1; pageIndex <= max(pageCount, 1); pageIndex++ {
				name := fmt.Sprintf("index=%d count=%d window=%d", pageIndex, pageCount, windowSize)
				pages := VisiblePages(pageIndex, pageCount, windowSize)

				if pageCount == 0 {
					require.Empty(t, pages, name)
					continue
				}

				require.Len(t, pages, min(windowSize, pageCount), name)
				require.GreaterOrEqual(t, pages[0], 1, name)
				require.LessOrEqual(t, pages[len(pages)-1], pageCount, name)
				require.Contains(t, pages, pageIndex, name)
				for i := 1; i < len(pages); i++ {
					require.Equal(t, pages[i-1]+1, pages[i], name)
				}
			}
		}
	}
}

func Test_Pager_VisiblePages(t *testing.T) {
	p := NewPagerFor(5, 10, 100)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, p.VisiblePages())

	p = NewPagerFor(1, 10, 1000).WithWindowSize(5)
	require.Equal(t, []int{1, 2, 3, 4, 5}, p.VisiblePages())
	require.Equal(t, p.VisiblePages(), p.VisiblePages())
}
