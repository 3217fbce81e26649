package facts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deosjr/kanren"
)

const family = `
parent:
  - [Homer, Bart]
  - [Marge, Bart]
  - [Abe, Homer]
age:
  - [Bart, 10]
  - [Abe, 83]
cartoon:
  - [Bart, true]
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(family))
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "cartoon", "parent"}, f.Names())

	rows, ok := f.Rows("age")
	require.True(t, ok)
	want := [][]kanren.Term{
		{kanren.Str("Bart"), kanren.Int(10)},
		{kanren.Str("Abe"), kanren.Int(83)},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	rows, ok = f.Rows("cartoon")
	require.True(t, ok)
	assert.Equal(t, [][]kanren.Term{{kanren.Str("Bart"), kanren.Bool(true)}}, rows)

	_, ok = f.Rows("sibling")
	assert.False(t, ok)
}

func TestRows_Copy(t *testing.T) {
	f, err := Parse([]byte(family))
	require.NoError(t, err)
	rows, _ := f.Rows("parent")
	rows[0][0] = kanren.Str("Ned")
	again, _ := f.Rows("parent")
	assert.Equal(t, kanren.Str("Homer"), again[0][0])
}

func TestParse_Errors(t *testing.T) {
	for _, tt := range []struct {
		name string
		doc  string
		msg  string
	}{
		{name: "ragged", doc: "parent:\n  - [Homer, Bart]\n  - [Abe]\n", msg: "row 1: got 1 columns, want 2"},
		{name: "float", doc: "weight:\n  - [Homer, 1.5]\n", msg: "unsupported value 1.5"},
		{name: "nested", doc: "parent:\n  - [Homer, [Bart]]\n", msg: "unsupported value"},
		{name: "not a table", doc: "parent: Homer\n", msg: "failed to parse facts"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Names())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.yaml")
	require.NoError(t, os.WriteFile(path, []byte(family), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Names(), 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("parent:\n  - [Homer, 1.5]\n"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestRelation(t *testing.T) {
	f, err := Parse([]byte(family))
	require.NoError(t, err)

	parent, err := f.Relation("parent")
	require.NoError(t, err)
	got := kanren.Run(10, func(q kanren.Term) kanren.Goal {
		return parent(q, kanren.Str("Bart"))
	})
	assert.Equal(t, []kanren.Term{kanren.Str("Homer"), kanren.Str("Marge")}, got)

	age, err := f.Relation("age")
	require.NoError(t, err)
	got = kanren.Run(10, func(q kanren.Term) kanren.Goal {
		return age(kanren.Str("Abe"), q)
	})
	assert.Equal(t, []kanren.Term{kanren.Int(83)}, got)

	_, err = f.Relation("sibling")
	assert.ErrorIs(t, err, ErrUnknownRelation)
}
