package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/listpager/internal/pagination"
)

// Caption summarises a page, e.g. "Showing 1,001–1,010 of 5,000 · page 101/500".
func Caption(st pagination.State) string {
	p := message.NewPrinter(language.English)
	if st.TotalItems == 0 {
		return p.Sprintf("No items · page %d/%d", st.CurrentPage, st.TotalPages)
	}
	start, end := pagination.Bounds(st.TotalItems, st.CurrentPage, st.PageSize)
	return p.Sprintf("Showing %d–%d of %d · page %d/%d",
		start+1, end, st.TotalItems, st.CurrentPage, st.TotalPages)
}
