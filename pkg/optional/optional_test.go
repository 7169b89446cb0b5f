package optional

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsAbsent(t *testing.T) {
	var v Value[string]
	_, ok := v.Get()
	assert.False(t, ok)
	assert.False(t, v.IsPresent())
}

func TestOf(t *testing.T) {
	v := Of("title")
	got, ok := v.Get()
	require.True(t, ok)
	assert.Equal(t, "title", got)
	assert.Equal(t, "title", v.OrElse("fallback"))
}

func TestOf_EmptyStringIsPresent(t *testing.T) {
	v := Of("")
	assert.True(t, v.IsPresent())
}

func TestNone_OrElse(t *testing.T) {
	assert.Equal(t, 7, None[int]().OrElse(7))
}

func TestMap(t *testing.T) {
	assert.Equal(t, "42", Map(Of(42), strconv.Itoa).OrElse(""))
	assert.False(t, Map(None[int](), strconv.Itoa).IsPresent())
}
