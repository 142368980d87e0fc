// Package dataset defines the records listpager pages through and where they come from.
package dataset

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind identifies the record layout of a dataset.
type Kind string

const (
	// KindEmployees is a list of employee cards.
	KindEmployees Kind = "employees"
	// KindItems is a list of plain text entries.
	KindItems Kind = "items"
)

// Sample data defaults.
const (
	DefaultSampleCount = 200

	sampleName     = "김철수"
	samplePosition = "원장"
	sampleEmail    = "ironman@naver.com"
	samplePhone    = "010-9999-2222"
	sampleItem     = "아이템"
)

// ErrUnknownKind is returned for a dataset kind other than employees or items.
var ErrUnknownKind = errors.New("unknown dataset kind")

// Record is a dataset entry that knows how to lay itself out as display columns.
type Record interface {
	Columns() []string
}

// Employee is one row of the employee directory.
type Employee struct {
	Name     string `json:"name"     yaml:"name"`
	Position string `json:"position" yaml:"position"`
	Email    string `json:"email"    yaml:"email"`
	Phone    string `json:"phone"    yaml:"phone"`
}

// Columns implements Record.
func (e Employee) Columns() []string {
	return []string{e.Name, e.Position, e.Email, e.Phone}
}

// Item is a plain text list entry.
type Item string

// Columns implements Record.
func (i Item) Columns() []string {
	return []string{string(i)}
}

// ParseKind validates a kind name. An empty name selects employees.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindEmployees:
		return KindEmployees, nil
	case KindItems:
		return KindItems, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownKind, s, KindEmployees, KindItems)
	}
}

// Headers returns the column titles for records of kind k.
func (k Kind) Headers() []string {
	if k == KindItems {
		return []string{"Item"}
	}
	return []string{"Name", "Position", "Email", "Phone"}
}

// Set is a loaded dataset ready to be paged.
type Set struct {
	Kind    Kind
	Records []Record
}

// Len returns the number of records.
func (s Set) Len() int {
	return len(s.Records)
}

// Headers returns the column titles for the set's kind.
func (s Set) Headers() []string {
	return s.Kind.Headers()
}

// SampleEmployees generates n placeholder employees numbered from 1.
func SampleEmployees(n int) []Employee {
	employees := make([]Employee, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		employees = append(employees, Employee{
			Name:     sampleName + strconv.Itoa(i),
			Position: samplePosition,
			Email:    sampleEmail,
			Phone:    samplePhone,
		})
	}
	return employees
}

// SampleItems generates n placeholder text items numbered from 1.
func SampleItems(n int) []Item {
	items := make([]Item, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		items = append(items, Item(sampleItem+" "+strconv.Itoa(i)))
	}
	return items
}

// Sample builds a generated set of the given kind.
func Sample(kind Kind, n int) (Set, error) {
	switch kind {
	case KindEmployees:
		return Set{Kind: kind, Records: toRecords(SampleEmployees(n))}, nil
	case KindItems:
		return Set{Kind: kind, Records: toRecords(SampleItems(n))}, nil
	default:
		return Set{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func toRecords[T Record](in []T) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = r
	}
	return out
}
