// Package render holds the non-interactive sinks: a text table for terminals
// and pipes, and an HTML page for browsers.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/rshade/listpager/internal/dataset"
	"github.com/rshade/listpager/internal/pagination"
)

const (
	tabPadding  = 2
	numberLabel = "No"
	emptyText   = "(no items)"
)

// IsWriterTerminal reports whether w is a terminal. Anything that is not an
// *os.File, such as a bytes.Buffer in tests, is not.
func IsWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// TextSink writes pages as a column-aligned table followed by a controls
// line. Styled output uses lipgloss; plain output is safe for pipes.
type TextSink struct {
	w       io.Writer
	headers []string
	styled  bool
}

// NewTextSink returns a sink writing to w with the given column headers.
func NewTextSink(w io.Writer, headers []string, styled bool) *TextSink {
	return &TextSink{w: w, headers: headers, styled: styled}
}

// RenderRows writes the table for one page.
func (s *TextSink) RenderRows(rows []pagination.Row[dataset.Record]) error {
	if len(rows) == 0 {
		text := emptyText
		if s.styled {
			text = EmptyStyle.Render(text)
		}
		_, err := fmt.Fprintln(s.w, text)
		return err
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, tabPadding, ' ', 0)

	header := append([]string{numberLabel}, s.headers...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		cells := []string{strconv.Itoa(row.Number)}
		if row.Item != nil {
			cells = append(cells, row.Item.Columns()...)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	table := buf.String()
	if s.styled {
		// Style the aligned header line as a whole so escape codes do not
		// disturb the column widths.
		first, rest, _ := strings.Cut(table, "\n")
		table = HeaderStyle.Render(first) + "\n" + rest
	}
	_, err := io.WriteString(s.w, table)
	return err
}

// RenderControls writes the navigation line.
func (s *TextSink) RenderControls(buttons []pagination.Button) error {
	_, err := fmt.Fprintln(s.w, ControlsLine(buttons, s.styled))
	return err
}

// ControlsLine formats buttons on one line. In plain form the active page is
// bracketed and disabled controls are parenthesised: (<<) 1 [2] 3 >>.
func ControlsLine(buttons []pagination.Button, styled bool) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		parts = append(parts, formatButton(b, styled))
	}
	if styled {
		return strings.Join(parts, "")
	}
	return strings.Join(parts, " ")
}

func formatButton(b pagination.Button, styled bool) string {
	if styled {
		switch {
		case b.Disabled:
			return DisabledButtonStyle.Render(b.Label)
		case b.Active:
			return ActiveButtonStyle.Render(b.Label)
		default:
			return ButtonStyle.Render(b.Label)
		}
	}
	switch {
	case b.Disabled:
		return "(" + b.Label + ")"
	case b.Active:
		return "[" + b.Label + "]"
	default:
		return b.Label
	}
}
