package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SupportedSchema is the semver constraint dataset files must satisfy.
const SupportedSchema = "^1.0.0"

// defaultSchemaVersion is assumed when a file omits schema_version.
const defaultSchemaVersion = "1.0.0"

// Format is the encoding of a dataset file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Dataset file errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported dataset file format")
	ErrUnsupportedSchema = errors.New("unsupported dataset schema version")
	ErrKindMismatch      = errors.New("dataset content does not match its kind")
)

// File is the on-disk representation of a dataset.
//
//	schema_version: 1.0.0
//	kind: employees
//	employees:
//	  - name: Alice
//	    position: Engineer
type File struct {
	SchemaVersion string     `json:"schema_version"      yaml:"schema_version"`
	Kind          Kind       `json:"kind"                yaml:"kind"`
	Employees     []Employee `json:"employees,omitempty" yaml:"employees,omitempty"`
	Items         []string   `json:"items,omitempty"     yaml:"items,omitempty"`
}

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and validates a dataset file.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading dataset %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates dataset bytes.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the schema version and that the content matches the kind.
// A missing kind is inferred from whichever list is populated.
func (f *File) Validate() error {
	version := f.SchemaVersion
	if version == "" {
		version = defaultSchemaVersion
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, f.SchemaVersion, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("invalid schema constraint %q: %w", SupportedSchema, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, SupportedSchema)
	}

	if f.Kind == "" && len(f.Items) > 0 && len(f.Employees) == 0 {
		f.Kind = KindItems
	}
	kind, err := ParseKind(string(f.Kind))
	if err != nil {
		return err
	}
	f.Kind = kind

	switch {
	case kind == KindEmployees && len(f.Items) > 0:
		return fmt.Errorf("%w: kind %q has items", ErrKindMismatch, kind)
	case kind == KindItems && len(f.Employees) > 0:
		return fmt.Errorf("%w: kind %q has employees", ErrKindMismatch, kind)
	}
	return nil
}

// Set converts the file into a pageable record set.
func (f *File) Set() Set {
	if f.Kind == KindItems {
		items := make([]Item, len(f.Items))
		for i, s := range f.Items {
			items[i] = Item(s)
		}
		return Set{Kind: KindItems, Records: toRecords(items)}
	}
	return Set{Kind: KindEmployees, Records: toRecords(f.Employees)}
}

// Source says where the session dataset comes from: a file when Path is set,
// otherwise Count generated records of Kind.
type Source struct {
	Kind  Kind
	Count int
	Path  string
}

// Open resolves the source into a record set.
func Open(src Source) (Set, error) {
	if src.Path != "" {
		f, err := Load(src.Path)
		if err != nil {
			return Set{}, err
		}
		return f.Set(), nil
	}

	kind, err := ParseKind(string(src.Kind))
	if err != nil {
		return Set{}, err
	}
	count := src.Count
	if count < 0 {
		count = 0
	}
	return Sample(kind, count)
}
