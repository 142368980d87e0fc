package pagination

import (
	"errors"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// decimalPage matches the only page spellings that count as numbers: an
// optional sign, digits, and an optional fraction. Hex, exponents, digit
// separators and the words Inf and NaN are not page numbers.
var decimalPage = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)

// Page and page-size limits.
const (
	// QueryParam is the URL query parameter carrying the requested page.
	QueryParam = "page"

	DefaultPage     = 1
	MinPage         = 1
	DefaultPageSize = 10
	MinPageSize     = 1
)

// Query is the raw page request as it arrived from the URL or a CLI flag.
// The zero value is an absent request.
type Query struct {
	raw     string
	present bool
}

// NoPage returns an absent page request.
func NoPage() Query {
	return Query{}
}

// PageString wraps a raw textual page value. The value is not validated here;
// Resolve decides what it means.
func PageString(raw string) Query {
	return Query{raw: raw, present: true}
}

// PageNumber wraps an already numeric page value.
func PageNumber(page int) Query {
	return Query{raw: strconv.Itoa(page), present: true}
}

// QueryFromValues reads the page parameter from decoded URL query values.
// A parameter that is present but empty counts as present and unparseable.
func QueryFromValues(values url.Values) Query {
	if !values.Has(QueryParam) {
		return NoPage()
	}
	return PageString(values.Get(QueryParam))
}

// QueryFromURL reads the page parameter of u. A nil URL is an absent request.
func QueryFromURL(u *url.URL) Query {
	if u == nil {
		return NoPage()
	}
	return QueryFromValues(u.Query())
}

// Present reports whether a page value was supplied at all.
func (q Query) Present() bool {
	return q.present
}

// Raw returns the page value exactly as supplied.
func (q Query) Raw() string {
	return q.raw
}

// number parses the raw value. ok is false when the request is absent or is
// not a plain decimal number. Digit strings too long for a float64 parse
// to ±Inf.
//
//nolint:nonamedreturns // Named returns document the two results.
func (q Query) number() (n float64, ok bool) {
	if !q.present {
		return 0, false
	}

	raw := strings.TrimSpace(q.raw)
	if !decimalPage.MatchString(raw) {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}
