package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		count int
		size  int
		want  int
	}{
		{name: "empty result set is one page", count: 0, size: 5, want: 1},
		{name: "exact multiple", count: 9, size: 3, want: 3},
		{name: "remainder adds a page", count: 10, size: 3, want: 4},
		{name: "fewer items than size", count: 2, size: 6, want: 1},
		{name: "one item per page", count: 7, size: 1, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.count, tt.size))
		})
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		total int
		want  int
	}{
		{name: "valid page", raw: "2", total: 3, want: 2},
		{name: "last page", raw: "3", total: 3, want: 3},
		{name: "missing", raw: "", total: 3, want: 1},
		{name: "non numeric", raw: "B", total: 10, want: 1},
		{name: "float", raw: "2.5", total: 10, want: 1},
		{name: "zero", raw: "0", total: 10, want: 1},
		{name: "negative", raw: "-4", total: 10, want: 1},
		{name: "past last page", raw: "999", total: 3, want: 1},
		{name: "surrounding spaces", raw: " 2 ", total: 3, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePage(tt.raw, tt.total))
		})
	}
}

func TestMakeRange(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		total     int
		window    int
		wantPages []int
		wantFirst bool
		wantLast  bool
	}{
		{name: "start of range", current: 1, total: 20, window: 4, wantPages: []int{1, 2, 3, 4}, wantLast: true},
		{name: "second page keeps window at start", current: 2, total: 20, window: 4, wantPages: []int{1, 2, 3, 4}, wantLast: true},
		{name: "middle of range", current: 10, total: 20, window: 4, wantPages: []int{9, 10, 11, 12}, wantFirst: true, wantLast: true},
		{name: "end of range shifts left", current: 20, total: 20, window: 4, wantPages: []int{17, 18, 19, 20}, wantFirst: true},
		{name: "near end shifts left", current: 19, total: 20, window: 4, wantPages: []int{17, 18, 19, 20}, wantFirst: true},
		{name: "odd window is centred", current: 5, total: 9, window: 5, wantPages: []int{3, 4, 5, 6, 7}, wantFirst: true, wantLast: true},
		{name: "fewer pages than window", current: 2, total: 3, window: 4, wantPages: []int{1, 2, 3}},
		{name: "single page", current: 1, total: 1, window: 4, wantPages: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := MakeRange(tt.current, tt.total, tt.window)

			assert.Equal(t, tt.wantPages, r.PageRange)
			assert.Equal(t, tt.current, r.CurrentPage)
			assert.Equal(t, tt.total, r.TotalPages)

			if tt.wantFirst {
				require.NotNil(t, r.FirstPage)
				assert.Equal(t, 1, *r.FirstPage)
			} else {
				assert.Nil(t, r.FirstPage)
			}
			if tt.wantLast {
				require.NotNil(t, r.LastPage)
				assert.Equal(t, tt.total, *r.LastPage)
			} else {
				assert.Nil(t, r.LastPage)
			}
		})
	}
}

func TestMakeRange_Properties(t *testing.T) {
	for total := 1; total <= 15; total++ {
		for window := 1; window <= 6; window++ {
			for current := 1; current <= total; current++ {
				r := MakeRange(current, total, window)

				require.Len(t, r.PageRange, min(window, total))
				assert.GreaterOrEqual(t, r.PageRange[0], 1)
				assert.LessOrEqual(t, r.PageRange[len(r.PageRange)-1], total)
				assert.Contains(t, r.PageRange, current)
				for i := 1; i < len(r.PageRange); i++ {
					assert.Equal(t, r.PageRange[i-1]+1, r.PageRange[i])
				}
				assert.Equal(t, r.PageRange[0] != 1, r.FirstPage != nil)
				assert.Equal(t, r.PageRange[len(r.PageRange)-1] != total, r.LastPage != nil)
			}
		}
	}
}
