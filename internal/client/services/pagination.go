package services

import (
	"strconv"
	"strings"
)

// Ellipsis marks a gap in a PageWindow.
const Ellipsis = -1

// PageWindow returns the zero-based page numbers to offer for navigation.
// Up to seven pages are all listed. Beyond that the first and last pages
// and the neighbours of current are listed, with Ellipsis for the gaps.
func PageWindow(current, total int) []int {
	if total <= 0 {
		return nil
	}
	if total <= 7 {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i
		}
		return pages
	}

	pages := []int{0}
	if current > 2 {
		pages = append(pages, Ellipsis)
	}
	for i := max(1, current-1); i <= min(total-2, current+1); i++ {
		pages = append(pages, i)
	}
	if current < total-3 {
		pages = append(pages, Ellipsis)
	}
	return append(pages, total-1)
}

// FormatPageWindow renders a window for the terminal with one-based
// numbers and the current page in brackets, e.g. "1 … 4 [5] 6 … 10".
func FormatPageWindow(current, total int) string {
	window := PageWindow(current, total)
	parts := make([]string, len(window))
	for i, p := range window {
		switch {
		case p == Ellipsis:
			parts[i] = "…"
		case p == current:
			parts[i] = "[" + strconv.Itoa(p+1) + "]"
		default:
			parts[i] = strconv.Itoa(p + 1)
		}
	}
	return strings.Join(parts, " ")
}
