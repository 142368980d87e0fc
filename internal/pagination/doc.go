// Package pagination provides the page math behind every list view in listpager.
//
// This package contains the pure, UI-independent rules shared by all sinks:
//   - Query and Resolve: turn a raw "page" request into a valid State
//   - BuildControls and Window: the navigation buttons around the current page
//   - Slice and Bounds: the rows of the dataset that belong to the current page
//
// Invalid page requests never produce an error. They are clamped onto the
// nearest valid page so that every sink can render without special cases.
package pagination
