package tokens

import (
	"io"
	"io/ioutil"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/parsec"
)

// A Rule couples a token value with the parser recognizing its lexeme.
type Rule struct {
	TokType int
	Parser  parsec.Parser
}

// Tokenizer implements the scanner.Tokenizer interface on top of a set of
// Rules. Rules are tried in order on the remaining input; the first one
// that matches produces the next token.
//
// White space between tokens is skipped unless the KeepWhitespace option
// is given.
type Tokenizer struct {
	rules  []Rule
	state  parsec.State
	skipWS parsec.Parser
	errh   func(error)
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// KeepWhitespace prevents the tokenizer from skipping white space between
// tokens. Clients using this will want a rule matching the white space.
func KeepWhitespace() Option {
	return func(t *Tokenizer) {
		t.skipWS = nil
	}
}

// NewTokenizer creates a Tokenizer for an input reader. The input is read
// completely up front.
func NewTokenizer(input io.Reader, rules []Rule, opts ...Option) (*Tokenizer, error) {
	buf, err := ioutil.ReadAll(input)
	if err != nil {
		return nil, err
	}
	t := &Tokenizer{
		rules:  rules,
		state:  parsec.NewState(string(buf)),
		skipWS: parsec.Discard(parsec.Many(parsec.Whitespace)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// SetErrorHandler sets an error handler function, which receives an error
// for every stretch of input no rule matches. Such stretches are skipped
// rune by rune.
func (t *Tokenizer) SetErrorHandler(h func(error)) {
	t.errh = h
}

// NextToken matches the next token of the input, trying the rules in
// order. The token's value will be set to the rule's token type, the token
// itself to the matched lexeme.
//
// Returns token value, lexeme, position and length of the match.
// The expected-token hint of the scanner.Tokenizer interface is not used.
//
// Interface scanner.Tokenizer
func (t *Tokenizer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	for {
		if t.skipWS != nil {
			if next, err := t.skipWS(t.state); err == nil {
				t.state = next
			}
		}
		if t.state.Remaining == "" {
			return scanner.EOF, nil, uint64(t.state.Pos), 0
		}
		for _, rule := range t.rules {
			next, err := rule.Parser(t.state)
			if err != nil {
				continue
			}
			if next.Pos == t.state.Pos {
				continue // a token must not be empty
			}
			lexeme := t.state.Remaining[:next.Pos-t.state.Pos]
			pos := uint64(t.state.Pos)
			t.state = parsec.State{Remaining: next.Remaining, Pos: next.Pos}
			tracer().Debugf("scanned token '%s' as %d", lexeme, rule.TokType)
			return rule.TokType, lexeme, pos, uint64(len(lexeme))
		}
		// no rule matches; report and resynchronize at the next rune
		err := unrecognized(t.state)
		tracer().Errorf(err.Error())
		if t.errh != nil {
			t.errh(err)
		}
		next, serr := skipRune(t.state)
		if serr != nil {
			return scanner.EOF, nil, uint64(t.state.Pos), 0
		}
		t.state = next
	}
}

var skipRune = parsec.Discard(parsec.AnyChar)

func unrecognized(st parsec.State) error {
	return &parsec.ParseFail{State: st, Expected: "a token"}
}
