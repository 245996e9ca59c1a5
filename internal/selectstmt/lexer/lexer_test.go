package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, s string) []Token {
	t.Helper()
	l := New(s)
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		if tok.Type == EOF {
			break
		}
		if tok.Type == Whitespace {
			continue
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestLexerColumnsAndWhere(t *testing.T) {
	toks := scanAll(t, "SELECT name, width WHERE width gt 100")
	require.Len(t, toks, 8)
	assert.Equal(t, Select, toks[0].Type)
	assert.Equal(t, Ident, toks[1].Type)
	assert.Equal(t, "name", toks[1].Value)
	assert.Equal(t, Comma, toks[2].Type)
	assert.Equal(t, Ident, toks[3].Type)
	assert.Equal(t, Where, toks[4].Type)
	assert.Equal(t, Ident, toks[5].Type)
	assert.Equal(t, Op, toks[6].Type)
	assert.Equal(t, "gt", toks[6].Value)
	assert.Equal(t, Ident, toks[7].Type)
}

func TestLexerStar(t *testing.T) {
	toks := scanAll(t, "SELECT *")
	require.Len(t, toks, 2)
	assert.Equal(t, Star, toks[1].Type)
}

func TestLexerSymbolicOperators(t *testing.T) {
	toks := scanAll(t, "width >= 100")
	require.Len(t, toks, 3)
	assert.Equal(t, Op, toks[1].Type)
	assert.Equal(t, "ge", toks[1].Value)
}

func TestLexerConnectives(t *testing.T) {
	toks := scanAll(t, "a eq 1 and_ b eq 2")
	var kinds []TokenType
	for _, tk := range toks {
		kinds = append(kinds, tk.Type)
	}
	assert.Contains(t, kinds, And)
}

func TestLexerSymbolicConnectives(t *testing.T) {
	toks := scanAll(t, "a eq 1 && b eq 2")
	found := false
	for _, tk := range toks {
		if tk.Type == And {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLexerQuotedIdentifier(t *testing.T) {
	toks := scanAll(t, `"full name" eq "John Doe"`)
	require.Len(t, toks, 3)
	assert.Equal(t, "full name", toks[0].Value)
	assert.Equal(t, "John Doe", toks[2].Value)
}

func TestLexerSentinelExpansion(t *testing.T) {
	toks := scanAll(t, "full_SPACE_name eq 1")
	assert.Equal(t, "full name", toks[0].Value)
}

func TestLexerNotEqualSymbol(t *testing.T) {
	toks := scanAll(t, "a != 1")
	require.Len(t, toks, 3)
	assert.Equal(t, "ne", toks[1].Value)
}
