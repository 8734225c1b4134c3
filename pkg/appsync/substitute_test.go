package appsync

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		subs Substitutions
		want string
	}{
		{
			name: "braced",
			text: "Hello ${NAME}!",
			subs: Substitutions{{Name: "NAME", Value: "World"}},
			want: "Hello World!",
		},
		{
			name: "bare and braced",
			text: "$NAME and ${NAME}",
			subs: Substitutions{{Name: "NAME", Value: "X"}},
			want: "X and X",
		},
		{
			name: "empty map is identity",
			text: "keep ${NAME} and $NAME",
			subs: nil,
			want: "keep ${NAME} and $NAME",
		},
		{
			name: "case sensitive",
			text: "${name} ${NAME}",
			subs: Substitutions{{Name: "NAME", Value: "x"}},
			want: "${name} x",
		},
		{
			name: "values are literal",
			text: "${table}",
			subs: Substitutions{{Name: "table", Value: "$1-${0}"}},
			want: "$1-${0}",
		},
		{
			name: "name is not a pattern",
			text: "${a.b} ${axb}",
			subs: Substitutions{{Name: "a.b", Value: "dot"}},
			want: "dot ${axb}",
		},
		{
			name: "prefix match",
			text: "$NAMESPACE",
			subs: Substitutions{{Name: "NAME", Value: "x"}},
			want: "xSPACE",
		},
		{
			name: "later key re-matches earlier output",
			text: "${A}",
			subs: Substitutions{{Name: "A", Value: "${B}"}, {Name: "B", Value: "done"}},
			want: "done",
		},
		{
			name: "earlier key does not see later output",
			text: "${B}",
			subs: Substitutions{{Name: "A", Value: "done"}, {Name: "B", Value: "${A}"}},
			want: "${A}",
		},
		{
			name: "empty name ignored",
			text: "$ and ${}",
			subs: Substitutions{{Name: "", Value: "x"}},
			want: "$ and ${}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Substitute(tt.text, tt.subs))
		})
	}
}

func TestSubstitutions_Merge(t *testing.T) {
	t.Parallel()

	global := Substitutions{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}
	item := Substitutions{{Name: "c", Value: "3"}, {Name: "a", Value: "override"}}

	merged := global.Merge(item)

	assert.Equal(t, Substitutions{
		{Name: "a", Value: "override"},
		{Name: "b", Value: "2"},
		{Name: "c", Value: "3"},
	}, merged)

	// Inputs are untouched so the next item starts from the same globals.
	assert.Equal(t, Substitutions{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}, global)
	assert.Equal(t, Substitutions{{Name: "c", Value: "3"}, {Name: "a", Value: "override"}}, item)

	assert.Empty(t, Substitutions(nil).Merge(nil))
}

func TestSubstitutions_Get(t *testing.T) {
	t.Parallel()

	subs := Substitutions{{Name: "a", Value: "1"}}
	v, ok := subs.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = subs.Get("b")
	assert.False(t, ok)
}

func TestSubstitutions_DecodeKeepsOrder(t *testing.T) {
	t.Parallel()

	want := Substitutions{
		{Name: "zeta", Value: "z"},
		{Name: "alpha", Value: "a"},
		{Name: "count", Value: "3"},
		{Name: "enabled", Value: "true"},
	}

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		var subs Substitutions
		require.NoError(t, yaml.Unmarshal([]byte("zeta: z\nalpha: a\ncount: 3\nenabled: true\n"), &subs))
		assert.Equal(t, want, subs)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		var subs Substitutions
		require.NoError(t, json.Unmarshal([]byte(`{"zeta":"z","alpha":"a","count":3,"enabled":true}`), &subs))
		assert.Equal(t, want, subs)
	})

	t.Run("json round trip", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(want[:2])
		require.NoError(t, err)
		assert.JSONEq(t, `{"zeta":"z","alpha":"a"}`, string(data))
		assert.Equal(t, `{"zeta":"z","alpha":"a"}`, string(data))
	})
}

func TestSubstitutions_DecodeRejectsNested(t *testing.T) {
	t.Parallel()

	var subs Substitutions
	err := yaml.Unmarshal([]byte("table:\n  Ref: UsersTable\n"), &subs)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"table":{"Ref":"UsersTable"}}`), &subs)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`["a"]`), &subs)
	assert.Error(t, err)
}
