package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSegmentsPlainOnly(t *testing.T) {
	segs, err := New("hello world").ScanSegments()
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, Plain, segs[0].Kind)
	assert.Equal(t, "hello world", segs[0].Payload)
}

func TestScanSegmentsSingleEmbedded(t *testing.T) {
	segs, err := New("_iwildcard(*abc*)").ScanSegments()
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, IWildcard, segs[0].Kind)
	assert.Equal(t, "*abc*", segs[0].Payload)
}

func TestScanSegmentsMixed(t *testing.T) {
	segs, err := New("full_itext(+name)_tail").ScanSegments()
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Equal(t, Plain, segs[0].Kind)
	assert.Equal(t, "full", segs[0].Payload)
	assert.Equal(t, IText, segs[1].Kind)
	assert.Equal(t, "+name", segs[1].Payload)
	assert.Equal(t, Plain, segs[2].Kind)
	assert.Equal(t, "_tail", segs[2].Payload)
}

func TestScanSegmentsBalancedParens(t *testing.T) {
	segs, err := New("_regex(a(b)c)").ScanSegments()
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, Regex, segs[0].Kind)
	assert.Equal(t, "a(b)c", segs[0].Payload)
}

func TestScanSegmentsUnbalanced(t *testing.T) {
	_, err := New("_text(abc").ScanSegments()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnbalancedParen)
}

func TestScanSegmentsAllKinds(t *testing.T) {
	cases := map[string]Kind{
		"_text(a)":      Text,
		"_itext(a)":     IText,
		"_wildcard(a)":  Wildcard,
		"_iwildcard(a)": IWildcard,
		"_regex(a)":     Regex,
		"_iregex(a)":    IRegex,
	}
	for input, kind := range cases {
		segs, err := New(input).ScanSegments()
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, kind, segs[0].Kind, input)
	}
}
