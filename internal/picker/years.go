package picker

import "fmt"

const (
	// YearSpan is the number of years offered, centred on the current year.
	YearSpan = 101
	// YearPageSize is the number of years shown per overlay page.
	YearPageSize = 20
)

// YearPager pages through a fixed list of years centred on a reference year.
type YearPager struct {
	first int
	page  int
}

// NewYearPager builds the list around current and starts on the page that
// contains it.
func NewYearPager(current int) YearPager {
	p := YearPager{first: current - YearSpan/2}
	p.page = p.pageOf(current)
	return p
}

// All returns every year in the list.
func (p YearPager) All() []int {
	years := make([]int, YearSpan)
	for i := range years {
		years[i] = p.first + i
	}
	return years
}

// Years returns the years on the current page.
func (p YearPager) Years() []int {
	start := p.page * YearPageSize
	end := min(start+YearPageSize, YearSpan)
	years := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		years = append(years, p.first+i)
	}
	return years
}

// Page returns the zero-based current page.
func (p YearPager) Page() int {
	return p.page
}

// PageCount returns the number of pages.
func (p YearPager) PageCount() int {
	return (YearSpan + YearPageSize - 1) / YearPageSize
}

func (p YearPager) CanPrev() bool {
	return p.page > 0
}

func (p YearPager) CanNext() bool {
	return p.page < p.PageCount()-1
}

// Prev moves one page back. It is a no-op on the first page.
func (p *YearPager) Prev() bool {
	if !p.CanPrev() {
		return false
	}
	p.page--
	return true
}

// Next moves one page forward. It is a no-op on the last page.
func (p *YearPager) Next() bool {
	if !p.CanNext() {
		return false
	}
	p.page++
	return true
}

// SetPage jumps to page n, clamped to the valid range.
func (p *YearPager) SetPage(n int) {
	p.page = max(0, min(n, p.PageCount()-1))
}

// Contains reports whether year is offered.
func (p YearPager) Contains(year int) bool {
	return year >= p.first && year < p.first+YearSpan
}

// ShowYear moves to the page holding year if it is offered.
func (p *YearPager) ShowYear(year int) bool {
	if !p.Contains(year) {
		return false
	}
	p.page = p.pageOf(year)
	return true
}

// RangeLabel describes the current page, e.g. "2016 - 2035".
func (p YearPager) RangeLabel() string {
	years := p.Years()
	if len(years) == 0 {
		return ""
	}
	return fmt.Sprintf("%d - %d", years[0], years[len(years)-1])
}

func (p YearPager) pageOf(year int) int {
	return (year - p.first) / YearPageSize
}
