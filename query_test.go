// Copyright (c) HashiCorp, Inc.

package query

import (
	"testing"

	"github.com/Geeks-Trident-LLC/dlquery/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, v any) *tree.Tree {
	t.Helper()
	tr, err := tree.Build(v)
	require.NoError(t, err)
	return tr
}

func TestFindPlainKeyNoSelect(t *testing.T) {
	data := &tree.OrderedMapping{
		Keys: []string{"widget"},
		Values: []any{&tree.OrderedMapping{
			Keys: []string{"window", "image", "text"},
			Values: []any{
				&tree.OrderedMapping{Keys: []string{"width", "title"}, Values: []any{int64(500), "ABC"}},
				&tree.OrderedMapping{Keys: []string{"width"}, Values: []any{int64(100)}},
				&tree.OrderedMapping{Keys: []string{"width"}, Values: []any{int64(300)}},
			},
		}},
	}
	tr, err := tree.BuildOrdered(data)
	require.NoError(t, err)
	root := tr.Root()

	results, err := Find(&root, "width", "")
	require.NoError(t, err)
	assert.Equal(t, []any{int64(500), int64(100), int64(300)}, results)
}

func TestFindWildcardValueWithSelect(t *testing.T) {
	data := map[string]any{
		"widget": map[string]any{
			"window": map[string]any{"name": "window abc"},
			"image":  map[string]any{"name": "image abc"},
			"text":   map[string]any{"name": "text abc", "src": "Images/abc.png"},
		},
	}
	tr := mustBuild(t, data)
	root := tr.Root()

	results, err := Find(&root, "name=_iwildcard(*abc*)", "src")
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"src": "Images/abc.png"},
	}, results)
}

func TestFindWhereClauseOverSiblings(t *testing.T) {
	data := map[string]any{
		"widget": map[string]any{
			"window": map[string]any{"alignment": "left", "width": int64(500), "name": "window abc"},
			"text":   map[string]any{"alignment": "center", "width": int64(300), "name": "text abc"},
		},
	}
	tr := mustBuild(t, data)
	root := tr.Root()

	results, err := Find(&root, "alignment=center", "name where width eq 300")
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"name": "text abc"},
	}, results)
}

func TestFindEnclosingRecordAcrossSequence(t *testing.T) {
	data := []any{
		map[string]any{
			"debug":  "on",
			"window": map[string]any{"title": "ABC Widget", "name": "window abc", "width": int64(500), "height": int64(500)},
		},
		map[string]any{
			"debug":  "off",
			"window": map[string]any{"title": "XYZ Widget", "name": "window xyz", "width": int64(599), "height": int64(599)},
		},
	}
	tr := mustBuild(t, data)
	root := tr.Root()

	results, err := Find(&root, "debug=off", "window")
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"window": map[string]any{
			"title": "XYZ Widget", "name": "window xyz", "width": int64(599), "height": int64(599),
		}},
	}, results)
}

func TestGetSliceAndNegativeIndex(t *testing.T) {
	data := []any{int64(2021), "Hello", map[string]any{"a": "Apricot"}}
	tr := mustBuild(t, data)
	root := tr.Root()

	got, err := Get(&root, "0:3:2")
	require.NoError(t, err)
	assert.Equal(t, []any{int64(2021), map[string]any{"a": "Apricot"}}, got)

	got, err = Get(&root, "-3")
	require.NoError(t, err)
	assert.Equal(t, int64(2021), got)

	_, err = Get(&root, "abc", WithGetException())
	require.Error(t, err)
	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, TreeShape, qerr.Kind)
}

func TestGetDefaultOnMiss(t *testing.T) {
	data := map[string]any{"a": int64(1)}
	tr := mustBuild(t, data)
	root := tr.Root()

	got, err := Get(&root, "missing", WithDefault("fallback"))
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
}

func TestFindOrderStability(t *testing.T) {
	data := map[string]any{
		"a": map[string]any{"width": int64(1)},
		"b": map[string]any{"width": int64(2)},
		"c": map[string]any{"width": int64(3)},
	}
	tr := mustBuild(t, data)
	root := tr.Root()

	first, err := Find(&root, "width", "")
	require.NoError(t, err)
	second, err := Find(&root, "width", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindCaseInsensitiveRightSideMatcher(t *testing.T) {
	data := map[string]any{
		"item": map[string]any{"state": "ENABLED"},
	}
	tr := mustBuild(t, data)
	root := tr.Root()

	results, err := Find(&root, "state=_itext(enabled)", "")
	require.NoError(t, err)
	assert.Equal(t, []any{"ENABLED"}, results)
}
