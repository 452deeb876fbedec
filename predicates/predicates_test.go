package predicates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonEmptyString(t *testing.T) {
	assert.NoError(t, NonEmptyString("ok"))
	assert.Error(t, NonEmptyString(""))
	assert.Error(t, NonEmptyString("   "))
	assert.Error(t, NonEmptyString(42))
}

func TestPositiveNumber(t *testing.T) {
	assert.NoError(t, PositiveNumber(1))
	assert.NoError(t, PositiveNumber(1.5))
	assert.Error(t, PositiveNumber(0))
	assert.Error(t, PositiveNumber(-1))
	assert.Error(t, PositiveNumber("1"))
}

func TestNonNegativeNumber(t *testing.T) {
	assert.NoError(t, NonNegativeNumber(0))
	assert.NoError(t, NonNegativeNumber(3))
	assert.Error(t, NonNegativeNumber(-0.5))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("user@example.com"))
	assert.Error(t, Email("not-an-email"))
	assert.Error(t, Email(123))
}

func TestMinLength(t *testing.T) {
	p := MinLength(3)
	assert.NoError(t, p("abc"))
	assert.Error(t, p("ab"))
	assert.Error(t, p(123))
}

func TestMaxLength(t *testing.T) {
	p := MaxLength(3)
	assert.NoError(t, p("abc"))
	assert.Error(t, p("abcd"))
}

func TestOneOf(t *testing.T) {
	p := OneOf("a", "b", "c")
	assert.NoError(t, p("b"))
	assert.Error(t, p("z"))
	assert.Error(t, p(1))
}

func TestRejection_Code(t *testing.T) {
	err := NonEmptyString("")
	r, ok := err.(rejection)
	if assert.True(t, ok) {
		assert.Equal(t, "non_empty_string", r.Code())
	}
}
