package pagination

// State is the resolved position inside a paginated dataset.
// CurrentPage always lies in [1, TotalPages] and TotalPages is never below 1.
type State struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// Resolve turns a raw page request into a valid State for a dataset of
// itemCount items shown pageSize at a time.
//
// Absent and non-numeric requests resolve to page 1, requests below 1 to
// page 1, and requests past the end to the last page. Fractional requests are
// truncated toward zero. A negative itemCount counts as an empty dataset and a
// pageSize below 1 counts as 1.
func Resolve(raw Query, itemCount, pageSize int) State {
	itemCount, pageSize = normalizeCounts(itemCount, pageSize)
	total := TotalPages(itemCount, pageSize)
	return newState(clampPage(raw, total), total, pageSize, itemCount)
}

// TotalPages returns ceil(itemCount / pageSize), never less than 1.
// An empty dataset still has one (empty) page.
func TotalPages(itemCount, pageSize int) int {
	itemCount, pageSize = normalizeCounts(itemCount, pageSize)

	pages := itemCount / pageSize
	if itemCount%pageSize > 0 {
		pages++
	}
	if pages < MinPage {
		return MinPage
	}
	return pages
}

// Offset returns the zero-based index of the first item on the current page.
func (s State) Offset() int {
	return (s.CurrentPage - 1) * s.PageSize
}

// Controls builds the navigation buttons for this state.
func (s State) Controls() []Button {
	return BuildControls(s.CurrentPage, s.TotalPages)
}

// clampPage maps a raw request onto [1, total].
func clampPage(raw Query, total int) int {
	n, ok := raw.number()
	switch {
	case !ok, n < MinPage:
		return MinPage
	case n > float64(total):
		return total
	default:
		// n is within [1, total], so the conversion cannot overflow.
		return int(n)
	}
}

func newState(current, total, pageSize, itemCount int) State {
	return State{
		CurrentPage: current,
		TotalPages:  total,
		PageSize:    pageSize,
		TotalItems:  itemCount,
		HasPrevious: current > MinPage,
		HasNext:     current < total,
	}
}

//nolint:nonamedreturns // Named returns keep the pair readable at call sites.
func normalizeCounts(itemCount, pageSize int) (items, size int) {
	if itemCount < 0 {
		itemCount = 0
	}
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	return itemCount, pageSize
}
