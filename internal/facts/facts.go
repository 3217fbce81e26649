// Package facts loads relation tables from YAML.
//
// A facts file maps relation names to rows of atoms:
//
//	parent:
//	  - [Homer, Bart]
//	  - [Abe, Homer]
//
// Strings, integers and booleans become Str, Int and Bool atoms.
package facts

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/deosjr/kanren"
)

// ErrUnknownRelation is returned when asking for a relation the file does
// not define.
var ErrUnknownRelation = errors.New("unknown relation")

// Facts is a set of named fact tables.
type Facts struct {
	tables map[string][][]kanren.Term
}

// Load reads and parses a facts file.
func Load(path string) (*Facts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read facts: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses a facts document. Every row of a relation must have the
// same number of columns.
func Parse(data []byte) (*Facts, error) {
	var raw map[string][][]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse facts: %w", err)
	}
	f := &Facts{tables: make(map[string][][]kanren.Term, len(raw))}
	for name, rows := range raw {
		table := make([][]kanren.Term, 0, len(rows))
		for i, row := range rows {
			if i > 0 && len(row) != len(rows[0]) {
				return nil, fmt.Errorf("relation %s row %d: got %d columns, want %d", name, i, len(row), len(rows[0]))
			}
			terms := make([]kanren.Term, len(row))
			for j, v := range row {
				t, err := atom(v)
				if err != nil {
					return nil, fmt.Errorf("relation %s row %d: %w", name, i, err)
				}
				terms[j] = t
			}
			table = append(table, terms)
		}
		f.tables[name] = table
	}
	return f, nil
}

func atom(v any) (kanren.Term, error) {
	switch x := v.(type) {
	case string:
		return kanren.Str(x), nil
	case int:
		return kanren.Int(x), nil
	case bool:
		return kanren.Bool(x), nil
	}
	return nil, fmt.Errorf("unsupported value %v of type %T", v, v)
}

// Names returns the defined relation names in sorted order.
func (f *Facts) Names() []string {
	names := make([]string, 0, len(f.tables))
	for name := range f.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rows returns a copy of the rows of a relation.
func (f *Facts) Rows(name string) ([][]kanren.Term, bool) {
	rows, ok := f.tables[name]
	if !ok {
		return nil, false
	}
	out := make([][]kanren.Term, len(rows))
	for i, r := range rows {
		out[i] = slices.Clone(r)
	}
	return out, true
}

// Relation returns the named table as a relation.
func (f *Facts) Relation(name string) (kanren.Relation, error) {
	rows, ok := f.tables[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownRelation)
	}
	return kanren.Table(rows...), nil
}
