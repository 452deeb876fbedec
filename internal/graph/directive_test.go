package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex_Lookup(t *testing.T) {
	ix := NewIndex(map[Name]Directive{
		"prop": {Predicate: "nonEmptyString", Mandatory: true},
	})

	d, ok := ix.Lookup("prop")
	assert.True(t, ok)
	assert.Equal(t, "nonEmptyString", d.Predicate)
	assert.True(t, d.Mandatory)

	_, ok = ix.Lookup("missing")
	assert.False(t, ok)
}

func TestIndex_Lookup_NilSafe(t *testing.T) {
	var ix *Index
	d, ok := ix.Lookup("prop")
	assert.False(t, ok)
	assert.Equal(t, Directive{}, d)
}

func TestIndex_Names(t *testing.T) {
	ix := NewIndex(map[Name]Directive{
		"a": {Mandatory: true},
		"b": {Mandatory: false},
	})
	names := ix.Names()
	assert.ElementsMatch(t, []Name{"a", "b"}, names)
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"GetEmail":   "email",
		"IsActive":   "active",
		"HasRole":    "role",
		"externalId": "externalId",
		"Id":         "id",
		"":           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeName(in), in)
	}
}
