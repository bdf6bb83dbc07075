package bnf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/parsec"
)

// A term is one item on the right-hand side of a production: either a
// reference to another symbol or a literal string.
type term struct {
	symbol string // for references: the referenced symbol
	lit    string // for literals: the exact text to match
	isRef  bool
}

func (tm term) String() string {
	if tm.isRef {
		return "<" + tm.symbol + ">"
	}
	return strconv.Quote(tm.lit)
}

// A production maps a symbol to one or more alternative sequences of terms.
type production struct {
	name         string
	alternatives *arraylist.List // of []term
}

// Grammar is a set of BNF productions, in input order. Productions with
// the same name accumulate their alternatives.
type Grammar struct {
	prods map[string]*production
	order []string
}

// Productions returns the names of the grammar's productions, in input
// order.
func (g *Grammar) Productions() []string {
	names := make([]string, len(g.order))
	copy(names, g.order)
	return names
}

// String renders the grammar in canonical BNF notation, one production
// per line.
func (g *Grammar) String() string {
	var b strings.Builder
	for i, name := range g.order {
		if i > 0 {
			b.WriteByte('\n')
		}
		prod := g.prods[name]
		fmt.Fprintf(&b, "<%s> ::=", name)
		for j := 0; j < prod.alternatives.Size(); j++ {
			if j > 0 {
				b.WriteString(" |")
			}
			v, _ := prod.alternatives.Get(j)
			for _, tm := range v.([]term) {
				b.WriteByte(' ')
				b.WriteString(tm.String())
			}
		}
	}
	return b.String()
}

// --- BNF notation reader ---------------------------------------------------

// The reader is built from parsec combinators. White space handling is
// line-oriented: blanks and tabs may appear anywhere within a production,
// but a line break ends it, so the general Token combinator (which skips
// newlines, too) is not used here.
var grammarParser = newGrammarParser()

func newGrammarParser() parsec.Parser {
	hws := parsec.Discard(parsec.Many(parsec.OneOf(" \t")))
	lineBreak := parsec.Discard(parsec.Sequence(hws, parsec.Char('\n')))

	ident := parsec.Text(parsec.Many1(parsec.Choose(
		parsec.Letter, parsec.Digit, parsec.Char('-'), parsec.Char('_'))))
	symbol := parsec.Sequence(
		parsec.Discard(parsec.Char('<')), ident, parsec.Discard(parsec.Char('>')))
	symbolItem := parsec.Coerce(func(vals []interface{}) interface{} {
		return term{symbol: vals[0].(string), isRef: true}
	}, symbol)

	quoted := parsec.Text(parsec.Sequence(
		parsec.Discard(parsec.Char('"')),
		parsec.Many(parsec.NoneOf("\"\n")),
		parsec.Discard(parsec.Char('"'))))
	literalItem := parsec.Coerce(func(vals []interface{}) interface{} {
		return term{lit: vals[0].(string)}
	}, quoted)

	item := parsec.Sequence(hws, parsec.Choose(symbolItem, literalItem))
	alternative := parsec.AsList(parsec.Many1(item))
	altBar := parsec.Sequence(hws, parsec.Discard(parsec.Char('|')))
	alternatives := parsec.SepBy1(altBar, alternative)

	defines := parsec.Discard(parsec.Sequence(
		parsec.Char(':'), parsec.Char(':'), parsec.Char('=')))
	prod := parsec.Coerce(buildProduction, parsec.Sequence(
		hws, symbol, hws, defines, alternatives, hws))

	return parsec.Sequence(
		parsec.Discard(parsec.Many(lineBreak)),
		parsec.SepBy1(parsec.Discard(parsec.Many1(lineBreak)), prod),
		parsec.Discard(parsec.Many(lineBreak)),
		parsec.EOF,
	)
}

func buildProduction(vals []interface{}) interface{} {
	prod := &production{
		name:         vals[0].(string),
		alternatives: arraylist.New(),
	}
	for _, alt := range vals[1:] {
		items := alt.([]interface{})
		seq := make([]term, len(items))
		for i, it := range items {
			seq[i] = it.(term)
		}
		prod.alternatives.Add(seq)
	}
	return prod
}

// Parse reads a grammar in BNF notation.
func Parse(src string) (*Grammar, error) {
	st, err := parsec.Run(grammarParser, src)
	if err != nil {
		tracer().Errorf("cannot read BNF input: %v", err)
		return nil, err
	}
	g := &Grammar{prods: make(map[string]*production)}
	for _, v := range st.Value {
		prod := v.(*production)
		if existing, ok := g.prods[prod.name]; ok {
			existing.alternatives.Add(prod.alternatives.Values()...)
			continue
		}
		g.prods[prod.name] = prod
		g.order = append(g.order, prod.name)
	}
	tracer().Infof("BNF grammar with %d productions", len(g.order))
	return g, nil
}
