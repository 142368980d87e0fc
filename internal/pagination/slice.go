package pagination

// Row is one dataset item together with its 1-based position in the whole
// dataset (not within the page).
type Row[T any] struct {
	Number int `json:"no"`
	Item   T   `json:"item"`
}

// Bounds returns the half-open index range [start, end) of the items shown on
// currentPage. The range is empty when the page lies past the end of the data
// or currentPage is below 1.
//
//nolint:nonamedreturns // Named returns document the half-open range.
func Bounds(itemCount, currentPage, pageSize int) (start, end int) {
	itemCount, pageSize = normalizeCounts(itemCount, pageSize)
	if currentPage < MinPage {
		return 0, 0
	}
	// Reject far-away pages before multiplying so huge page numbers cannot overflow.
	if currentPage-1 > itemCount/pageSize {
		return itemCount, itemCount
	}

	start = (currentPage - 1) * pageSize
	if start >= itemCount {
		return itemCount, itemCount
	}
	return start, min(start+pageSize, itemCount)
}

// Slice returns the rows of data that belong to currentPage, numbered by
// absolute position. Out-of-range pages yield an empty, non-nil slice.
func Slice[T any](data []T, currentPage, pageSize int) []Row[T] {
	start, _ := Bounds(len(data), currentPage, pageSize)
	items := SliceItems(data, currentPage, pageSize)

	rows := make([]Row[T], 0, len(items))
	for i, item := range items {
		rows = append(rows, Row[T]{Number: start + i + 1, Item: item})
	}
	return rows
}

// SliceItems returns the raw sub-slice of data for currentPage. The result
// shares the backing array with data but has its capacity capped, so appends
// never write into the caller's dataset.
func SliceItems[T any](data []T, currentPage, pageSize int) []T {
	start, end := Bounds(len(data), currentPage, pageSize)
	return data[start:end:end]
}
