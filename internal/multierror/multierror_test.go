package multierror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_CombinedEmpty(t *testing.T) {
	errs := New[string]()
	require.NoError(t, errs.Combined())
}

func TestError_Combined(t *testing.T) {
	sentinel := errors.New("boom")

	errs := New[string]()
	errs.Add("a", sentinel)
	errs.Add("b", errors.New("bang"))

	combined := errs.Combined()
	require.Error(t, combined)
	require.ErrorIs(t, combined, sentinel)

	assert.Equal(t, 2, errs.Len())
	assert.Equal(t, "a: boom; b: bang", combined.Error())

	got, ok := errs.Get("a")
	require.True(t, ok)
	assert.Equal(t, sentinel, got)
}
