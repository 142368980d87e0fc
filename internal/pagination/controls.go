package pagination

import (
	"strconv"
)

// Window geometry and jump-control labels.
const (
	// WindowSize is the maximum number of numbered buttons shown at once.
	WindowSize = 10
	// WindowLookBehind is how many pages before the current one the window
	// tries to show.
	WindowLookBehind = 4

	FirstLabel = "<<"
	LastLabel  = ">>"
)

// ButtonKind distinguishes the jump controls from numbered page buttons.
type ButtonKind int

const (
	// KindFirst jumps to page 1.
	KindFirst ButtonKind = iota
	// KindPage jumps to the page printed on it.
	KindPage
	// KindLast jumps to the last page.
	KindLast
)

// String returns the lowercase name used in JSON and templates.
func (k ButtonKind) String() string {
	switch k {
	case KindFirst:
		return "first"
	case KindPage:
		return "page"
	case KindLast:
		return "last"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ButtonKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Button describes one navigation control. Sinks decide how it looks; a
// Disabled button must not be wired to any action.
type Button struct {
	Label      string     `json:"label"`
	TargetPage int        `json:"target_page"`
	Disabled   bool       `json:"disabled"`
	Active     bool       `json:"active"`
	Kind       ButtonKind `json:"kind"`
}

// Window returns the inclusive range of page numbers shown around current.
// The window holds min(WindowSize, total) pages, keeps up to
// WindowLookBehind pages before current, and shifts left near the end.
//
//nolint:nonamedreturns // Named returns document the inclusive bounds.
func Window(current, total int) (start, end int) {
	current, total = normalizePosition(current, total)

	start = max(MinPage, current-WindowLookBehind)
	if start > total-WindowSize+1 {
		end = total
	} else {
		end = start + WindowSize - 1
	}
	start = max(MinPage, end-WindowSize+1)
	return start, end
}

// BuildControls returns the navigation controls in display order: the
// jump-to-first button, one button per page in the window, and the
// jump-to-last button. Only the numbered button for current is Active.
func BuildControls(current, total int) []Button {
	current, total = normalizePosition(current, total)
	start, end := Window(current, total)

	buttons := make([]Button, 0, end-start+3) //nolint:mnd // window plus the two jump controls
	buttons = append(buttons, Button{
		Label:      FirstLabel,
		TargetPage: MinPage,
		Disabled:   current == MinPage,
		Kind:       KindFirst,
	})
	for i := range end - start + 1 {
		page := start + i
		buttons = append(buttons, Button{
			Label:      strconv.Itoa(page),
			TargetPage: page,
			Active:     page == current,
			Kind:       KindPage,
		})
	}
	buttons = append(buttons, Button{
		Label:      LastLabel,
		TargetPage: total,
		Disabled:   current == total,
		Kind:       KindLast,
	})

	return buttons
}

// FindPage returns the numbered button targeting page, if it is in the window.
func FindPage(buttons []Button, page int) (Button, bool) {
	for _, b := range buttons {
		if b.Kind == KindPage && b.TargetPage == page {
			return b, true
		}
	}
	return Button{}, false
}

// ActiveIndex returns the index of the active button, or -1.
func ActiveIndex(buttons []Button) int {
	for i, b := range buttons {
		if b.Active {
			return i
		}
	}
	return -1
}

// normalizePosition applies the same floor rules as Resolve so that callers
// passing raw numbers can never get an empty window.
//
//nolint:nonamedreturns // Named returns keep the pair readable at call sites.
func normalizePosition(current, total int) (cur, tot int) {
	if total < MinPage {
		total = MinPage
	}
	return min(max(current, MinPage), total), total
}
