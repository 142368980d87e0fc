package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/rshade/listpager/internal/dataset"
	"github.com/rshade/listpager/internal/pager"
	"github.com/rshade/listpager/internal/pagination"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

//nolint:gochecknoglobals // Parsed once; templates are safe for concurrent use.
var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// DefaultTitle heads the HTML page.
const DefaultTitle = "listpager"

//nolint:gochecknoglobals // Fixed column classes for employee rows.
var employeeCellClasses = []string{"employee-name", "employee-position", "employee-email", "employee-phone"}

// HTMLSink collects one page and writes it as a full HTML document whose
// controls are plain links, so every navigation is a fresh page load.
type HTMLSink struct {
	base     *url.URL
	kind     dataset.Kind
	title    string
	rows     []htmlRow
	controls []htmlControl
}

type htmlRow struct {
	Number int
	Cells  []string
}

type htmlControl struct {
	Label    string
	Href     string
	Disabled bool
	Active   bool
}

type htmlPage struct {
	Title       string
	Caption     string
	Employees   bool
	CellClasses []string
	Rows        []htmlRow
	Controls    []htmlControl
}

// NewHTMLSink returns a sink whose control links are built from base, so
// query parameters other than page survive navigation.
func NewHTMLSink(base *url.URL, kind dataset.Kind, title string) *HTMLSink {
	if title == "" {
		title = DefaultTitle
	}
	return &HTMLSink{base: base, kind: kind, title: title}
}

// RenderRows replaces the collected rows.
func (s *HTMLSink) RenderRows(rows []pagination.Row[dataset.Record]) error {
	width := len(s.kind.Headers())
	s.rows = make([]htmlRow, 0, len(rows))
	for _, row := range rows {
		var cells []string
		if row.Item != nil {
			cells = row.Item.Columns()
		}
		for len(cells) < width {
			cells = append(cells, "")
		}
		s.rows = append(s.rows, htmlRow{Number: row.Number, Cells: cells})
	}
	return nil
}

// RenderControls replaces the collected controls.
func (s *HTMLSink) RenderControls(buttons []pagination.Button) error {
	s.controls = make([]htmlControl, 0, len(buttons))
	for _, b := range buttons {
		c := htmlControl{Label: b.Label, Disabled: b.Disabled, Active: b.Active}
		if !b.Disabled {
			c.Href = pager.PageURL(s.base, b.TargetPage).String()
		}
		s.controls = append(s.controls, c)
	}
	return nil
}

// Execute writes the collected page, captioned from st.
func (s *HTMLSink) Execute(w io.Writer, st pagination.State) error {
	page := htmlPage{
		Title:       s.title,
		Caption:     Caption(st),
		Employees:   s.kind != dataset.KindItems,
		CellClasses: employeeCellClasses,
		Rows:        s.rows,
		Controls:    s.controls,
	}
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}
