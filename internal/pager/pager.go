// Package pager wires the pagination rules into a render pipeline.
//
// A Pager owns an immutable dataset and page size. Every evaluation starts
// from a URL: the page parameter is resolved, the matching rows are sliced
// out, the navigation controls are built, and the result is pushed to a Sink.
// Navigation never mutates a previous view; Activate writes a new URL to a
// History and evaluates again from scratch.
package pager

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"github.com/rshade/listpager/internal/pagination"
)

// Pager errors.
var (
	ErrInvalidPageSize = errors.New("page size must be >= 1")
	ErrDisabledControl = errors.New("navigation control is disabled")
	ErrNilHistory      = errors.New("nil history")
)

// Config is the static per-session pager configuration.
type Config struct {
	PageSize int
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{PageSize: pagination.DefaultPageSize}
}

// Validate reports whether the configuration can drive a Pager.
func (c Config) Validate() error {
	if c.PageSize < pagination.MinPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.PageSize)
	}
	return nil
}

// View is everything a sink needs to draw one page.
type View[T any] struct {
	State    pagination.State    `json:"pagination"`
	Rows     []pagination.Row[T] `json:"rows"`
	Controls []pagination.Button `json:"controls"`
	URL      *url.URL            `json:"-"`
}

// Pager evaluates page requests against a fixed dataset. It is safe for
// concurrent use because nothing in it changes after New.
type Pager[T any] struct {
	cfg  Config
	data []T
}

// New creates a Pager over a private copy of data.
func New[T any](cfg Config, data []T) (*Pager[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pager[T]{cfg: cfg, data: slices.Clone(data)}, nil
}

// Len returns the dataset size.
func (p *Pager[T]) Len() int {
	return len(p.data)
}

// Evaluate resolves the page named by u and builds the view for it.
// A nil URL behaves like a URL without a page parameter.
func (p *Pager[T]) Evaluate(u *url.URL) View[T] {
	state := pagination.Resolve(pagination.QueryFromURL(u), len(p.data), p.cfg.PageSize)
	return View[T]{
		State:    state,
		Rows:     pagination.Slice(p.data, state.CurrentPage, state.PageSize),
		Controls: state.Controls(),
		URL:      u,
	}
}

// Render evaluates u and draws the result on sink.
func (p *Pager[T]) Render(u *url.URL, sink Sink[T]) (View[T], error) {
	view := p.Evaluate(u)
	if err := Draw(sink, view); err != nil {
		return view, err
	}
	return view, nil
}

// Navigate records a request for page raw in history and re-renders from the
// new URL. raw goes through the same resolution as any URL value, so
// out-of-range requests land on a valid page.
func (p *Pager[T]) Navigate(h History, raw string, sink Sink[T]) (View[T], error) {
	if h == nil {
		return View[T]{}, ErrNilHistory
	}
	next := WithPage(h.Current(), raw)
	h.Push(next)
	return p.Render(next, sink)
}

// Activate performs the action behind a navigation control. The control is
// checked against the view at the current history entry, not against the
// copy the caller holds: a control that is disabled there, or no longer
// shown, is refused with ErrDisabledControl and leaves history untouched.
func (p *Pager[T]) Activate(h History, b pagination.Button, sink Sink[T]) (View[T], error) {
	if h == nil {
		return View[T]{}, ErrNilHistory
	}
	live, ok := liveControl(p.Evaluate(h.Current()).Controls, b)
	if !ok || live.Disabled {
		return View[T]{}, fmt.Errorf("%w: %s", ErrDisabledControl, b.Label)
	}
	return p.Navigate(h, strconv.Itoa(live.TargetPage), sink)
}

// liveControl finds the control in buttons that does what b does.
func liveControl(buttons []pagination.Button, b pagination.Button) (pagination.Button, bool) {
	for _, c := range buttons {
		if c.Kind == b.Kind && c.TargetPage == b.TargetPage {
			return c, true
		}
	}
	return pagination.Button{}, false
}

// PageURL returns a copy of base whose page parameter is page. Other query
// parameters are preserved.
func PageURL(base *url.URL, page int) *url.URL {
	return WithPage(base, strconv.Itoa(page))
}

// WithPage returns a copy of base whose page parameter is raw.
func WithPage(base *url.URL, raw string) *url.URL {
	next := cloneURL(base)
	q := next.Query()
	q.Set(pagination.QueryParam, raw)
	next.RawQuery = q.Encode()
	return next
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return &url.URL{}
	}
	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}
	return &c
}
