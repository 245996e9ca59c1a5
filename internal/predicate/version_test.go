package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareVersion(t *testing.T) {
	ok, err := CompareVersion("1.2", OpLT, "1.10")
	require.NoError(t, err)
	assert.True(t, ok, "non-semantic numeric-aware comparison should treat 1.10 as greater than 1.2")

	ok, err = CompareVersion("2.0.0", OpEQ, "2.0.0")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompareVersionInvalid(t *testing.T) {
	_, err := CompareVersion("not-a-version!!", OpEQ, "1.0")
	require.Error(t, err)
	var invalid *ErrInvalidVersion
	assert.ErrorAs(t, err, &invalid)
}

func TestCompareSemanticVersion(t *testing.T) {
	ok, err := CompareSemanticVersion("1.2.3", OpLT, "1.10.0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CompareSemanticVersion("2.0.0-alpha", OpLT, "2.0.0")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompareSemanticVersionAcceptsShortForm(t *testing.T) {
	_, err := CompareSemanticVersion("1.2", OpEQ, "1.2.0")
	require.NoError(t, err)
}
