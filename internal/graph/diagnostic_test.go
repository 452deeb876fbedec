package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_ErrorMessages(t *testing.T) {
	cause := errors.New("must be positive")

	cases := []struct {
		name string
		diag *Diagnostic
		want string
	}{
		{
			name: "invalid field with cause",
			diag: newInvalidField("GetPriceRent", nil, cause),
			want: "priceRent: must be positive",
		},
		{
			name: "invalid field with alternatives",
			diag: newInvalidField("primary", []Name{"altProp"}, nil),
			want: "primary: invalid, and no alternative among [altProp] validated",
		},
		{
			name: "requirements",
			diag: newRequirements("prop", []Name{"req1", "req2"}),
			want: "prop: requires [req1 req2]",
		},
		{
			name: "conflict",
			diag: newConflictField("prop", "conflictProp"),
			want: "prop: conflicts with [conflictProp]",
		},
		{
			name: "cyclic requirement",
			diag: newCyclicRequirement([]Name{"prop", "prop1", "prop"}),
			want: "cyclic requirement: [prop prop1 prop]",
		},
		{
			name: "directive error",
			diag: newDirectiveError("prop", "ghost"),
			want: "prop: malformed directive, unresolved reference [ghost]",
		},
		{
			name: "post validation with cause",
			diag: newPostValidation("IsActive", cause),
			want: "active: must be positive",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.diag.Error())
		})
	}
}

func TestDiagnostic_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	diag := newInvalidField("prop", nil, cause)

	require.ErrorIs(t, diag, cause)
	assert.Same(t, cause, diag.Unwrap())
}

func TestDiagnosticKind_String(t *testing.T) {
	cases := map[DiagnosticKind]string{
		InvalidField:      "InvalidField",
		Requirements:      "Requirements",
		ConflictField:     "ConflictField",
		CyclicRequirement: "CyclicRequirement",
		DirectiveError:    "DirectiveError",
		PostValidation:    "PostValidation",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}
