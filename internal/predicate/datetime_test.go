package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareDatetimeDefaultFormats(t *testing.T) {
	ok, err := CompareDatetime("06/14/2021 23:30:00", OpEQ, "Jun 14 11:30 PM 2021")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CompareDatetime("06/14/2021 15:30:00", OpEQ, "Jun 14 11:30 PM 2021")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompareDatetimeOrdering(t *testing.T) {
	ok, err := CompareDatetime("06/14/2021 08:00:00", OpLT, "06/15/2021 08:00:00")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompareDatetimeExplicitFormat(t *testing.T) {
	ok, err := CompareDatetime("2021-06-14", OpEQ, "14-06-2021 format=%d-%m-%Y")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompareDatetimeWithSkips(t *testing.T) {
	ok, err := CompareDatetime("06/14/2021", OpEQ, "06/14/2021 (local) skips=\\(local\\)")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompareDatetimeUnparsable(t *testing.T) {
	_, err := CompareDatetime("not a date at all zzz", OpEQ, "also not a date")
	require.Error(t, err)
	var unparsable *ErrUnparsableDatetime
	assert.ErrorAs(t, err, &unparsable)
}
