package pager

import (
	"fmt"

	"github.com/rshade/listpager/internal/pagination"
)

// Sink is the rendering side of the pipeline. Each call replaces whatever
// the sink showed before.
type Sink[T any] interface {
	RenderRows(rows []pagination.Row[T]) error
	RenderControls(buttons []pagination.Button) error
}

// Draw pushes a view to sink, rows first. A nil sink draws nothing.
func Draw[T any](sink Sink[T], view View[T]) error {
	if sink == nil {
		return nil
	}
	if err := sink.RenderRows(view.Rows); err != nil {
		return fmt.Errorf("rendering rows: %w", err)
	}
	if err := sink.RenderControls(view.Controls); err != nil {
		return fmt.Errorf("rendering controls: %w", err)
	}
	return nil
}

// Recorder is a Sink that keeps the last rows and controls it was given.
type Recorder[T any] struct {
	Rows     []pagination.Row[T]
	Controls []pagination.Button
	Renders  int
}

// RenderRows implements Sink.
func (r *Recorder[T]) RenderRows(rows []pagination.Row[T]) error {
	r.Rows = rows
	r.Renders++
	return nil
}

// RenderControls implements Sink.
func (r *Recorder[T]) RenderControls(buttons []pagination.Button) error {
	r.Controls = buttons
	return nil
}
