package listview_test

import (
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listview "github.com/rshade/listpager/internal/tui/list"
)

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func renderInt(item int, selected bool) string {
	if selected {
		return "> " + strconv.Itoa(item)
	}
	return "  " + strconv.Itoa(item)
}

func TestModel_ShortListShowsEverything(t *testing.T) {
	m := listview.New(numbers(3), 10, 80, renderInt)

	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 3, m.VisibleTo())
	assert.Equal(t, "> 1\n  2\n  3", m.View())
}

func TestModel_CursorKeys(t *testing.T) {
	m := listview.New(numbers(5), 10, 80, renderInt)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, m.Selected(), "cursor stops at the top")

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 4, m.Selected(), "cursor stops at the bottom")

	require.NotNil(t, m.SelectedItem())
	assert.Equal(t, 5, *m.SelectedItem())
}

func TestModel_VirtualScroll(t *testing.T) {
	m := listview.New(numbers(100), 10, 80, renderInt)

	m.SetSelected(50)
	assert.Equal(t, 45, m.VisibleFrom())
	assert.Equal(t, 55, m.VisibleTo())

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines, "> 51")

	m.SetSelected(1000)
	assert.Equal(t, 99, m.Selected())
	assert.Equal(t, 90, m.VisibleFrom())
	assert.Equal(t, 100, m.VisibleTo())
}

func TestModel_Resize(t *testing.T) {
	m := listview.New(numbers(30), 10, 80, renderInt)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 4})

	assert.Equal(t, 4, m.Height())
	assert.Equal(t, 40, m.Width())
	assert.Len(t, strings.Split(m.View(), "\n"), 4)

	m.Resize(0, 40)
	assert.Equal(t, 1, m.Height(), "height never drops below one row")
}

func TestModel_SetItemsResetsCursor(t *testing.T) {
	m := listview.New(numbers(10), 5, 80, renderInt)
	m.SetSelected(7)

	m.SetItems(numbers(2))
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 2, m.ItemCount())

	m.SetItems(nil)
	assert.Empty(t, m.View())
	assert.Nil(t, m.SelectedItem())
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Selected())
}
