// Package catalog holds the condition field catalog: a fixed, read-only
// mapping from field key to its kind, legal operators, and bounds.
package catalog

import (
	"github.com/pkg/errors"

	"tacboard/util"
)

// Kind is the value shape a field accepts.
type Kind string

const (
	Bool   Kind = "boolean"
	Number Kind = "number"
	Enum   Kind = "enum"
)

// FieldSpec describes one condition field.
type FieldSpec struct {
	Key     string   `yaml:"key"`
	Label   string   `yaml:"label"`
	Kind    Kind     `yaml:"kind"`
	Group   string   `yaml:"group"`
	Options []string `yaml:"options,omitempty"`
	Min     int      `yaml:"min,omitempty"`
	Max     int      `yaml:"max,omitempty"`
}

// Catalog is a flat lookup keyed by field key, with field and group
// order preserved for display.
type Catalog struct {
	fields []FieldSpec
	byKey  map[string]FieldSpec
	groups []string
}

// New builds a catalog from ordered field specs.
func New(fields []FieldSpec) Catalog {

	byKey := make(map[string]FieldSpec, len(fields))
	var groups []string
	seen := map[string]bool{}

	for _, fs := range fields {
		byKey[fs.Key] = fs
		if !seen[fs.Group] {
			seen[fs.Group] = true
			groups = append(groups, fs.Group)
		}
	}

	return Catalog{
		fields: fields,
		byKey:  byKey,
		groups: groups,
	}
}

// Load reads field specs from a yaml file.
func Load(path string) (cat Catalog, err error) {

	var doc struct {
		Fields []FieldSpec `yaml:"fields"`
	}
	err = util.LoadConfig(&doc, path)
	if err != nil {
		return
	}

	if len(doc.Fields) == 0 {
		err = errors.Errorf("no fields in catalog file %s", path)
		return
	}

	cat = New(doc.Fields)
	return
}

// Lookup returns the spec for a field key.
func (cat Catalog) Lookup(key string) (fs FieldSpec, ok bool) {
	fs, ok = cat.byKey[key]
	return
}

// Fields returns field specs in catalog order.
func (cat Catalog) Fields() []FieldSpec {
	return cat.fields
}

// Groups returns group names in first-appearance order.
func (cat Catalog) Groups() []string {
	return cat.groups
}

// GroupFields returns the fields of one group, in catalog order.
func (cat Catalog) GroupFields(group string) (fields []FieldSpec) {
	for _, fs := range cat.fields {
		if fs.Group == group {
			fields = append(fields, fs)
		}
	}
	return
}

// Operators returns the operators legal for a kind.
func Operators(kind Kind) []string {
	switch kind {
	case Bool:
		return []string{"is"}
	case Number:
		return []string{"Any", "=", ">", "<"}
	default:
		return []string{"Any", "=", "!="}
	}
}

// DefaultOp returns the canonical operator for a kind after a field
// change: bool fields constrain immediately, the rest start at "=".
func DefaultOp(kind Kind) string {
	if kind == Bool {
		return "is"
	}
	return "="
}

// ValidValue reports whether a value fits a field's kind: bools for
// boolean fields, ints within bounds for numeric fields, and a known
// option or the unconstrained sentinel for enums.
func ValidValue(fs FieldSpec, value any) bool {
	switch fs.Kind {
	case Bool:
		_, ok := value.(bool)
		return ok
	case Number:
		n, ok := value.(int)
		if !ok {
			return false
		}
		return n >= fs.Min && (fs.Max <= fs.Min || n <= fs.Max)
	default:
		s, ok := value.(string)
		if !ok {
			return false
		}
		if s == "Any" {
			return true
		}
		for _, opt := range fs.Options {
			if s == opt {
				return true
			}
		}
		return false
	}
}

// DefaultValue returns the canonical value for a field after a field
// change.
func DefaultValue(fs FieldSpec) any {
	switch fs.Kind {
	case Bool:
		return true
	case Enum:
		if len(fs.Options) > 0 {
			return fs.Options[0]
		}
		return ""
	default:
		return 0
	}
}
