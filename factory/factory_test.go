// Copyright (c) HashiCorp, Inc.

package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFromJSONDataPreservesOrderAndFindsKeys(t *testing.T) {
	data := `{"widget":{"window":{"width":500,"title":"ABC"},"image":{"width":100},"text":{"width":300}}}`
	h, err := CreateFromJSONData(data)
	require.NoError(t, err)

	results, err := h.Find("width", "")
	require.NoError(t, err)
	assert.Equal(t, []any{500.0, 100.0, 300.0}, results)
}

func TestCreateFromYAMLDataPreservesOrder(t *testing.T) {
	data := "widget:\n  window:\n    width: 500\n  image:\n    width: 100\n  text:\n    width: 300\n"
	h, err := CreateFromYAMLData(data)
	require.NoError(t, err)

	results, err := h.Find("width", "")
	require.NoError(t, err)
	assert.Equal(t, []any{int64(500), int64(100), int64(300)}, results)
}

func TestCreateFromCSVDataBuildsRowSequence(t *testing.T) {
	data := "name,width\nwindow,500\nimage,100\n"
	h, err := CreateFromCSVData(data)
	require.NoError(t, err)

	results, err := h.Find("name", "")
	require.NoError(t, err)
	assert.Equal(t, []any{"window", "image"}, results)
}

func TestCreateFromCSVDataEmpty(t *testing.T) {
	h, err := CreateFromCSVData("")
	require.NoError(t, err)
	results, err := h.Find("anything", "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCreateFromCSVDataDuplicateHeaderLastValueWins(t *testing.T) {
	data := "name,width,name\nwindow,500,door\n"
	h, err := CreateFromCSVData(data)
	require.NoError(t, err)

	row, err := h.Get("0")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "door", "width": "500"}, row)

	results, err := h.Find("name", "")
	require.NoError(t, err)
	assert.Equal(t, []any{"door"}, results)
}
