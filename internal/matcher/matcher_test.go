package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileText(t *testing.T) {
	t.Parallel()
	m, err := CompileText("a.b*c", false)
	require.NoError(t, err)
	assert.True(t, m.MatchString("a.b*c"))
	assert.False(t, m.MatchString("aXbYc"))
	assert.False(t, m.MatchString("A.B*C"))

	mi, err := CompileText("ABC", true)
	require.NoError(t, err)
	assert.True(t, mi.MatchString("abc"))
}

func TestCompileWildcard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pattern string
		match   []string
		nomatch []string
	}{
		{pattern: "*abc*", match: []string{"xabcy", "abc"}, nomatch: []string{"xyz"}},
		{pattern: "wi?dow", match: []string{"window"}, nomatch: []string{"windxow"}},
		{pattern: "[a-c]bc", match: []string{"abc", "bbc", "cbc"}, nomatch: []string{"dbc"}},
		{pattern: "[!a-c]bc", match: []string{"dbc"}, nomatch: []string{"abc"}},
	}
	for _, tc := range tests {
		m, err := CompileWildcard(tc.pattern, false)
		require.NoError(t, err)
		for _, s := range tc.match {
			assert.True(t, m.MatchString(s), "pattern %q should match %q", tc.pattern, s)
		}
		for _, s := range tc.nomatch {
			assert.False(t, m.MatchString(s), "pattern %q should not match %q", tc.pattern, s)
		}
	}
}

func TestCompileWildcardIgnoreCase(t *testing.T) {
	t.Parallel()
	m, err := CompileWildcard("*ABC*", true)
	require.NoError(t, err)
	assert.True(t, m.MatchString("xabcy"))
}

func TestCompileRegex(t *testing.T) {
	t.Parallel()
	m, err := CompileRegex(`[0-9]+\.[0-9]+`, false)
	require.NoError(t, err)
	assert.True(t, m.MatchString("10.4"))
	assert.False(t, m.MatchString("10.4.1"))
}

func TestWildcardRoundTrip(t *testing.T) {
	t.Parallel()
	for _, pattern := range []string{"*abc*", "wi?dow", "[a-c]bc", "[!a-c]bc", "a*b?c"} {
		body := WildcardBody(pattern)
		recovered, ok := WildcardFromRegexBody(body)
		require.True(t, ok)
		assert.Equal(t, pattern, recovered)
	}
}

func TestCompileIdempotent(t *testing.T) {
	t.Parallel()
	m1, err := CompileWildcard("*abc*", true)
	require.NoError(t, err)
	m2, err := CompileWildcard("*abc*", true)
	require.NoError(t, err)
	assert.Equal(t, m1.String(), m2.String())
}
