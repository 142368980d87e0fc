// Package listview provides the scrolling row list used by the interactive
// pager.
//
// A page rarely exceeds the terminal, but large page sizes can. The list
// renders only the rows inside the viewport and keeps the cursor visible as it
// moves with up/down, j/k, and pgup/pgdown.
package listview
