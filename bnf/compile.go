package bnf

import (
	"errors"
	"fmt"

	"github.com/npillmayer/parsec"
)

// Compiler compiles Grammars into parsec parsers. Builtin symbols may be
// bound to parsers beforehand; a builtin binding is consulted whenever a
// right-hand side references a symbol the grammar does not define.
type Compiler struct {
	builtins map[string]parsec.Parser
}

// NewCompiler creates an empty Compiler.
func NewCompiler() *Compiler {
	return &Compiler{builtins: make(map[string]parsec.Parser)}
}

// Bind binds a builtin symbol to a parser, e.g.
//
//   c.Bind("letter", parsec.Letter)
//
// Grammar productions shadow builtin bindings of the same name.
func (c *Compiler) Bind(symbol string, p parsec.Parser) {
	c.builtins[symbol] = p
}

// Recognizer compiles g into a parser for the start production. Every
// production becomes a choice between its alternatives; symbol references
// are resolved through Forward placeholders, so recursive productions
// work without further ado. Referencing a symbol that is neither defined
// by the grammar nor bound as a builtin is an error.
func (c *Compiler) Recognizer(g *Grammar, start string) (parsec.Parser, error) {
	if _, ok := g.prods[start]; !ok {
		return nil, fmt.Errorf("bnf: start symbol <%s> is not defined", start)
	}
	fwds := make(map[string]*parsec.Forward, len(g.prods))
	for name := range g.prods {
		fwds[name] = &parsec.Forward{}
	}
	for _, name := range g.order {
		prod := g.prods[name]
		alts := make([]parsec.Parser, 0, prod.alternatives.Size())
		for i := 0; i < prod.alternatives.Size(); i++ {
			v, _ := prod.alternatives.Get(i)
			seq := v.([]term)
			ps := make([]parsec.Parser, 0, len(seq))
			for _, tm := range seq {
				p, err := c.resolve(tm, fwds)
				if err != nil {
					return nil, err
				}
				ps = append(ps, p)
			}
			alts = append(alts, parsec.Sequence(ps...))
		}
		fwds[name].Set(parsec.Choose(alts...))
		tracer().Debugf("compiled <%s> with %d alternatives", name, len(alts))
	}
	return fwds[start].Parse, nil
}

func (c *Compiler) resolve(tm term, fwds map[string]*parsec.Forward) (parsec.Parser, error) {
	if !tm.isRef {
		return matchLiteral(tm.lit), nil
	}
	if f, ok := fwds[tm.symbol]; ok {
		return f.Parse, nil
	}
	if p, ok := c.builtins[tm.symbol]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("bnf: symbol <%s> is not defined", tm.symbol)
}

// matchLiteral matches an exact string, producing no values. The empty
// literal matches the empty string (the grammar's epsilon).
func matchLiteral(lit string) parsec.Parser {
	ps := make([]parsec.Parser, 0, len(lit))
	for _, r := range lit {
		ps = append(ps, parsec.Char(r))
	}
	return parsec.Discard(parsec.Sequence(ps...))
}

// Recognize reports whether input matches the start production of g,
// anchored at the end of input.
func (c *Compiler) Recognize(g *Grammar, start, input string) (bool, error) {
	p, err := c.Recognizer(g, start)
	if err != nil {
		return false, err
	}
	if _, err := parsec.Run(parsec.Sequence(p, parsec.EOF), input); err != nil {
		var pf *parsec.ParseFail
		if errors.As(err, &pf) {
			tracer().Debugf("input rejected: %v", err)
			return false, nil
		}
		return false, err
	}
	return true, nil
}
