package parsec

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Satisfy returns a parser for a single rune. pred is a predicate function
// which looks at a rune and decides whether it is valid here; name describes
// the class of accepted runes and shows up in error messages.
func Satisfy(pred func(rune) bool, name string) Parser {
	return func(st State) (State, error) {
		r, size := utf8.DecodeRuneInString(st.Remaining)
		if size == 0 || (r == utf8.RuneError && size == 1) {
			return State{}, fail(st, name)
		}
		if !pred(r) {
			return State{}, fail(st, name)
		}
		return st.push(string(r)).consume(size), nil
	}
}

// Char returns a parser that only accepts an exact match on a rune.
// For example, Char('A') returns a parser that only accepts the letter 'A'.
func Char(x rune) Parser {
	return Satisfy(func(r rune) bool { return r == x }, fmt.Sprintf("character %q", x))
}

// AnyChar accepts any single rune. It is like "." in a regular expression.
var AnyChar = Satisfy(func(rune) bool { return true }, "any character")

// OneOf returns a parser that accepts any of the runes in set, but no
// others. It is like "[abc]" in a regular expression.
func OneOf(set string) Parser {
	return Satisfy(func(r rune) bool {
		return strings.ContainsRune(set, r)
	}, "one of "+spellOut(set))
}

// NoneOf returns a parser that accepts any rune except the ones in set,
// like "[^abc]" in a regular expression. This is the opposite of OneOf.
func NoneOf(set string) Parser {
	return Satisfy(func(r rune) bool {
		return !strings.ContainsRune(set, r)
	}, "none of "+spellOut(set))
}

func spellOut(set string) string {
	var b strings.Builder
	for i, r := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%q", r)
	}
	return b.String()
}

// Rune class tables. Letters include combining marks, so that words in
// scripts with diacritics match as units.
var (
	letterTable = rangetable.Merge(unicode.L, unicode.M)
	digitTable  = rangetable.Merge(unicode.Nd)
	spaceTable  = rangetable.Merge(unicode.White_Space)
)

// Letter accepts an alphabetic rune.
var Letter = Satisfy(func(r rune) bool { return unicode.Is(letterTable, r) }, "letter")

// Digit accepts a numeric digit.
var Digit = Satisfy(func(r rune) bool { return unicode.Is(digitTable, r) }, "digit")

// Whitespace accepts a white space rune.
var Whitespace = Satisfy(func(r rune) bool { return unicode.Is(spaceTable, r) }, "whitespace")

// Word accepts one or more letters and produces them as a single string.
var Word = Text(Many1(Letter))

// Integer accepts an optionally signed sequence of digits and produces
// an int.
var Integer = AsInt(Sequence(Maybe(OneOf("-+")), Many1(Digit)))

// Token wraps p so that white space before and after it is skipped.
func Token(p Parser) Parser {
	skipWS := Discard(Many(Whitespace))
	return Sequence(skipWS, p, skipWS)
}

// Between accepts mid between left and right, discarding the results of
// both delimiters.
func Between(left, right, mid Parser) Parser {
	return Token(Sequence(Discard(left), mid, Discard(right)))
}

// DoubleQuoted accepts p between double quotes.
func DoubleQuoted(p Parser) Parser {
	return Between(Char('"'), Char('"'), p)
}

// SepBy1 accepts one or more occurrences of p, separated by sep. The
// results of the separators are discarded. For example,
// SepBy1(Char(','), Digit) accepts "1,2,3".
func SepBy1(sep, p Parser) Parser {
	return Sequence(p, Many(Sequence(Discard(sep), p)))
}

// SepBy is like SepBy1 but allows for zero occurrences.
func SepBy(sep, p Parser) Parser {
	return Maybe(SepBy1(sep, p))
}
