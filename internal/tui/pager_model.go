// Package tui is the interactive terminal sink. Page changes never rebuild
// the program: a key press produces a navigation message, the message pushes
// a URL onto an in-memory history, and the pager re-renders into the model.
package tui

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/listpager/internal/dataset"
	"github.com/rshade/listpager/internal/logging"
	"github.com/rshade/listpager/internal/pager"
	"github.com/rshade/listpager/internal/pagination"
	"github.com/rshade/listpager/internal/render"
	listview "github.com/rshade/listpager/internal/tui/list"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// Lines used by the title, caption, header, controls, input and help.
	chromeHeight  = 8
	maxInputLen   = 9
	columnGap     = "  "
	defaultTitle  = "listpager"
	inputPrompt   = "Go to page: "
	noItemsNotice = "No items"
)

// PageRow is one rendered dataset row.
type PageRow = pagination.Row[dataset.Record]

// ActivateMsg asks the model to perform a navigation control's action.
type ActivateMsg struct {
	Button pagination.Button
}

// NavigateMsg asks the model to go to the raw page request Raw, exactly as
// if it had been typed into the page parameter of the URL.
type NavigateMsg struct {
	Raw string
}

// HistoryMsg moves through the navigation history: negative steps go back.
type HistoryMsg struct {
	Step int
}

// Model is the Bubble Tea model for the interactive pager. It is also the
// pager's Sink, so every render replaces what the model displays.
type Model struct {
	ctx     context.Context
	pager   *pager.Pager[dataset.Record]
	history *pager.MemoryHistory
	title   string
	headers []string

	state    pagination.State
	controls []pagination.Button
	rows     *listview.Model[PageRow]
	widths   []int

	focus int
	input string

	keys KeyMap
	help help.Model

	width  int
	height int
	err    error
}

var _ pager.Sink[dataset.Record] = (*Model)(nil)

// New builds the model and renders the page named by start.
func New(
	ctx context.Context,
	p *pager.Pager[dataset.Record],
	headers []string,
	start *url.URL,
) (*Model, error) {
	if p == nil {
		return nil, errors.New("nil pager")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		ctx:     ctx,
		pager:   p,
		history: pager.NewMemoryHistory(start),
		title:   defaultTitle,
		headers: headers,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.rows = listview.New[PageRow](nil, m.rowsHeight(), m.width, m.renderRow)

	view, err := p.Render(m.history.Current(), m)
	if err != nil {
		return nil, err
	}
	m.state = view.State
	return m, nil
}

// SetTitle changes the heading.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// RenderRows replaces the displayed rows.
func (m *Model) RenderRows(rows []PageRow) error {
	m.widths = columnWidths(m.headers, rows)
	m.rows.SetItems(rows)
	return nil
}

// RenderControls replaces the navigation controls and focuses the active page.
func (m *Model) RenderControls(buttons []pagination.Button) error {
	m.controls = buttons
	m.focus = max(pagination.ActiveIndex(buttons), 0)
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rows.Resize(m.rowsHeight(), msg.Width)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case ActivateMsg:
		m.apply(m.pager.Activate(m.history, msg.Button, m))
		return m, nil
	case NavigateMsg:
		m.apply(m.pager.Navigate(m.history, msg.Raw, m))
		return m, nil
	case HistoryMsg:
		m.step(msg.Step)
		return m, nil
	}
	return m, nil
}

//nolint:cyclop // One branch per binding.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isDigits(msg) {
		if len(m.input)+len(msg.Runes) <= maxInputLen {
			m.input += string(msg.Runes)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Activate):
		if m.input != "" {
			raw := m.input
			m.input = ""
			return m, navigate(raw)
		}
		if b, ok := m.focused(); ok {
			return m, activate(b)
		}
	case msg.Type == tea.KeyBackspace:
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
	case key.Matches(msg, m.keys.Clear):
		m.input = ""
	case key.Matches(msg, m.keys.Prev):
		return m, m.relative(-1)
	case key.Matches(msg, m.keys.Next):
		return m, m.relative(1)
	case key.Matches(msg, m.keys.First):
		return m, m.jump(pagination.KindFirst)
	case key.Matches(msg, m.keys.Last):
		return m, m.jump(pagination.KindLast)
	case key.Matches(msg, m.keys.FocusNext):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.FocusPrev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Back):
		return m, stepHistory(-1)
	case key.Matches(msg, m.keys.Forward):
		return m, stepHistory(1)
	case key.Matches(msg, m.keys.RowUp):
		m.rows.SetSelected(m.rows.Selected() - 1)
	case key.Matches(msg, m.keys.RowDown):
		m.rows.SetSelected(m.rows.Selected() + 1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.rows.Resize(m.rowsHeight(), m.width)
	}
	return m, nil
}

// relative activates the numbered control for current+delta. There is none
// before the first page or after the last, so the key does nothing there.
func (m *Model) relative(delta int) tea.Cmd {
	b, ok := pagination.FindPage(m.controls, m.state.CurrentPage+delta)
	if !ok {
		return nil
	}
	return activate(b)
}

func (m *Model) jump(kind pagination.ButtonKind) tea.Cmd {
	for _, b := range m.controls {
		if b.Kind == kind {
			return activate(b)
		}
	}
	return nil
}

func (m *Model) focused() (pagination.Button, bool) {
	if m.focus < 0 || m.focus >= len(m.controls) {
		return pagination.Button{}, false
	}
	return m.controls[m.focus], true
}

func (m *Model) moveFocus(delta int) {
	n := len(m.controls)
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

// apply records the outcome of a navigation. Activating a disabled control
// is inert, not an error.
func (m *Model) apply(view pager.View[dataset.Record], err error) {
	if errors.Is(err, pager.ErrDisabledControl) {
		return
	}
	m.err = err
	if err != nil {
		return
	}
	m.state = view.State
	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Int("page", view.State.CurrentPage).
		Int("history", m.history.Len()).
		Msg("page rendered")
}

func (m *Model) step(n int) {
	moved := false
	for ; n < 0 && m.history.Back(); n++ {
		moved = true
	}
	for ; n > 0 && m.history.Forward(); n-- {
		moved = true
	}
	if !moved {
		return
	}
	view, err := m.pager.Render(m.history.Current(), m)
	m.apply(view, err)
}

func activate(b pagination.Button) tea.Cmd {
	return func() tea.Msg { return ActivateMsg{Button: b} }
}

func navigate(raw string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Raw: raw} }
}

func stepHistory(n int) tea.Cmd {
	return func() tea.Msg { return HistoryMsg{Step: n} }
}

func isDigits(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) == 0 {
		return false
	}
	for _, r := range msg.Runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// State returns the page currently shown.
func (m *Model) State() pagination.State {
	return m.state
}

// Controls returns the navigation controls currently shown.
func (m *Model) Controls() []pagination.Button {
	return m.controls
}

// Focus returns the index of the focused control.
func (m *Model) Focus() int {
	return m.focus
}

// Input returns the page number being typed.
func (m *Model) Input() string {
	return m.input
}

// History returns the navigation history.
func (m *Model) History() *pager.MemoryHistory {
	return m.history
}

// SelectedRow returns the row under the cursor.
func (m *Model) SelectedRow() (PageRow, bool) {
	r := m.rows.SelectedItem()
	if r == nil {
		return PageRow{}, false
	}
	return *r, true
}

// Err returns the last navigation error.
func (m *Model) Err() error {
	return m.err
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(CaptionStyle.Render(render.Caption(m.state)))
	b.WriteString("\n\n")

	if m.rows.ItemCount() == 0 {
		b.WriteString(RowStyle.Render(noItemsNotice))
	} else {
		b.WriteString(HeaderStyle.Render(m.headerLine()))
		b.WriteString("\n")
		b.WriteString(m.rows.View())
	}
	b.WriteString("\n\n")

	b.WriteString(m.controlsLine())
	b.WriteString("\n")
	if m.input != "" {
		b.WriteString(InputStyle.Render(inputPrompt + m.input))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) controlsLine() string {
	parts := make([]string, 0, len(m.controls))
	for i, c := range m.controls {
		label := render.ControlsLine([]pagination.Button{c}, true)
		if i == m.focus {
			label = FocusStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) headerLine() string {
	cells := append([]string{"No"}, m.headers...)
	return formatCells(cells, m.widths)
}

func (m *Model) renderRow(row PageRow, selected bool) string {
	line := formatCells(rowCells(row), m.widths)
	if selected {
		return SelectedRowStyle.Render(line)
	}
	return RowStyle.Render(line)
}

func (m *Model) rowsHeight() int {
	chrome := chromeHeight
	if m.help.ShowAll {
		chrome += len(m.keys.FullHelp())
	}
	return max(m.height-chrome, 1)
}

func rowCells(row PageRow) []string {
	cells := []string{strconv.Itoa(row.Number)}
	if row.Item != nil {
		cells = append(cells, row.Item.Columns()...)
	}
	return cells
}

// columnWidths sizes each column to its widest cell on the page, counting
// display cells so wide characters line up.
func columnWidths(headers []string, rows []PageRow) []int {
	widths := make([]int, len(headers)+1)
	measure := func(cells []string) {
		for i, c := range cells {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(c))
			}
		}
	}
	measure(append([]string{"No"}, headers...))
	for _, r := range rows {
		measure(rowCells(r))
	}
	return widths
}

func formatCells(cells []string, widths []int) string {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteString(columnGap)
		}
		b.WriteString(c)
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", max(widths[i]-lipgloss.Width(c), 0)))
		}
	}
	return b.String()
}
