package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIgnoreSet_Empty(t *testing.T) {
	set, err := NewIgnoreSet()
	require.NoError(t, err)
	assert.False(t, set.Has(Alternatives))
	assert.False(t, set.Has(Mandatory))
	assert.False(t, set.Has(RequirementsToken))
	assert.False(t, set.Has(Conflicts))
}

func TestNewIgnoreSet_Tokens(t *testing.T) {
	set, err := NewIgnoreSet(Alternatives, Conflicts)
	require.NoError(t, err)
	assert.True(t, set.Has(Alternatives))
	assert.True(t, set.Has(Conflicts))
	assert.False(t, set.Has(Mandatory))
	assert.False(t, set.Has(RequirementsToken))
}

func TestNewIgnoreSet_UnknownTokenRejected(t *testing.T) {
	_, err := NewIgnoreSet(IgnoreToken(99))
	require.Error(t, err)
}

func TestParseIgnoreToken(t *testing.T) {
	cases := []struct {
		in   string
		want IgnoreToken
		ok   bool
	}{
		{"ALTERNATIVES", Alternatives, true},
		{"MANDATORY", Mandatory, true},
		{"REQUIREMENTS", RequirementsToken, true},
		{"CONFLICTS", Conflicts, true},
		{"bogus", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseIgnoreToken(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}
