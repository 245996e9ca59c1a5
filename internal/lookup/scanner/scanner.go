package scanner

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrUnbalancedParen is returned when an embedded _kind(..) form reaches
// end of input before its parentheses balance out.
var ErrUnbalancedParen = errors.New("scanner: unbalanced parenthesis in embedded form")

// Kind tags a Segment as either an untyped run of plain text or one of the
// six embedded matcher forms a lookup side may contain.
type Kind int

const (
	Plain Kind = iota
	Text
	IText
	Wildcard
	IWildcard
	Regex
	IRegex
)

// Segment is one alternating fragment of a scanned lookup side: either a
// Plain run of characters, or the payload of a _kind(payload) form.
type Segment struct {
	Kind    Kind
	Payload string
}

var kindPrefixes = []struct {
	prefix string
	kind   Kind
}{
	{"_itext(", IText},
	{"_iwildcard(", IWildcard},
	{"_iregex(", IRegex},
	{"_text(", Text},
	{"_wildcard(", Wildcard},
	{"_regex(", Regex},
}

func matchKindPrefix(s string) (Kind, string, bool) {
	for _, kp := range kindPrefixes {
		if strings.HasPrefix(s, kp.prefix) {
			return kp.kind, kp.prefix, true
		}
	}
	return Plain, "", false
}

// EmbeddedPrefix reports whether s begins with one of the six embedded
// matcher-kind prefixes (_text(, _itext(, _wildcard(, _iwildcard(,
// _regex(, _iregex() and, if so, returns the matched prefix literal. It
// lets callers outside this package (the lookup compiler's separator
// scan) recognize the same embedded forms without duplicating the list.
func EmbeddedPrefix(s string) (string, bool) {
	_, prefix, ok := matchKindPrefix(s)
	return prefix, ok
}

func New(text string) *Lexer {
	return &Lexer{buf: text}
}

// Lexer is a single-backup rune reader over a string, with
// Shift/Backup/Peek cursor operations.
type Lexer struct {
	buf      string
	off      int
	lastRead readOp
	eof      bool
}

// readOp tracks the width of the last-read rune, since UTF-8 characters can
// span more than one byte.
type readOp int8

const (
	opRead readOp = iota - 1
	opInvalid
	opReadRune1
	opReadRune2
	opReadRune3
	opReadRune4
)

const (
	RuneErr rune = -1
	RuneEOF rune = 0
)

func (l *Lexer) empty() bool { return len(l.buf) <= l.off }

// Len is the length of the unread portion of the input buffer.
func (l *Lexer) Len() int { return len(l.buf) - l.off }

// Off is the offset from the start of the input buffer.
func (l *Lexer) Off() int { return l.off }

func (l *Lexer) remaining() string { return l.buf[l.off:] }

// Shift returns the next rune, or a synthetic EOF rune (value 0) once the
// buffer is exhausted, without advancing past it.
func (l *Lexer) Shift() rune {
	if l.empty() {
		l.eof = true
		l.lastRead = opReadRune1
		return RuneEOF
	}
	c := l.buf[l.off]
	if c < utf8.RuneSelf {
		l.off++
		l.lastRead = opReadRune1
		return rune(c)
	}
	r, n := utf8.DecodeRuneInString(l.buf[l.off:])
	l.off += n
	l.lastRead = readOp(n)
	return r
}

// Backup moves the offset back by the size of the last-read rune. Only one
// level of backup is supported.
func (l *Lexer) Backup() error {
	if l.lastRead <= opInvalid {
		return errors.New("scanner: previous operation was not a successful Shift")
	}
	if l.eof {
		l.eof = false
		return nil
	}
	if l.off >= int(l.lastRead) {
		l.off -= int(l.lastRead)
	}
	l.lastRead = opInvalid
	return nil
}

// Peek returns the next rune without consuming it.
func (l *Lexer) Peek() rune {
	r := l.Shift()
	l.Backup()
	return r
}

// Expect advances past the next rune if it satisfies valid.
func (l *Lexer) Expect(valid CheckFn) bool {
	if !valid(l.Shift()) {
		l.Backup()
		return false
	}
	return true
}

// ScanSegments implements the segment scanner: an OUTSIDE /
// INSIDE_KIND(kind, depth) state machine that splits a lookup side into
// alternating Plain fragments and embedded _kind(payload) fragments, with
// balanced-parenthesis tracking inside each embedded form.
func (l *Lexer) ScanSegments() ([]Segment, error) {
	var segments []Segment
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			segments = append(segments, Segment{Kind: Plain, Payload: plain.String()})
			plain.Reset()
		}
	}

	for !l.empty() {
		if kind, prefix, ok := matchKindPrefix(l.remaining()); ok {
			flushPlain()
			l.off += len(prefix)
			payload, err := l.scanBalanced()
			if err != nil {
				return nil, err
			}
			segments = append(segments, Segment{Kind: kind, Payload: payload})
			continue
		}
		plain.WriteRune(l.Shift())
	}
	flushPlain()
	return segments, nil
}

// scanBalanced consumes runes until the parenthesis opened by the caller
// (depth already at 1) closes, returning everything in between.
func (l *Lexer) scanBalanced() (string, error) {
	depth := 1
	var sb strings.Builder
	for {
		r := l.Shift()
		if IsEOF(r) {
			return "", ErrUnbalancedParen
		}
		switch {
		case IsParenthesisLeft(r):
			depth++
			sb.WriteRune(r)
		case IsParenthesisRight(r):
			depth--
			if depth == 0 {
				return sb.String(), nil
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
}
