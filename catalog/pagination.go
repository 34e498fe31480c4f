package catalog

import "gemrock-store/models"

// maxVisiblePages is the width of the page-number window
const maxVisiblePages = 5

// PageNumbers returns the page numbers to render as controls, at most 5 at a time.
// It returns an empty slice when there is at most one page.
func PageNumbers(current, total int) []int {
	if total <= 1 {
		return []int{}
	}

	var start, end int
	switch {
	case total <= maxVisiblePages:
		start, end = 1, total
	case current <= 3:
		start, end = 1, maxVisiblePages
	case current >= total-2:
		start, end = total-maxVisiblePages+1, total
	default:
		start, end = current-2, current+2
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// NewPager builds the pager controls for a listing. The pager holds no state;
// the caller owns the current page and passes it back on every change.
func NewPager(current, total int) models.Pager {
	pager := models.Pager{
		Visible: total > 1,
		Current: current,
		Total:   total,
		Pages:   PageNumbers(current, total),
	}
	if !pager.Visible {
		return pager
	}

	pager.HasPrevious = current > 1
	pager.HasNext = current < total
	if pager.HasPrevious {
		pager.Previous = current - 1
	}
	if pager.HasNext {
		pager.Next = current + 1
	}
	return pager
}
