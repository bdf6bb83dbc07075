package bnf

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/gorgo/lr"
)

// Token values for literal terminals start well clear of the Unicode code
// points a scanner might emit.
const tokenBase = 0x110000

// LRAnalysis exports g as an analyzed gorgo LR grammar, for grammars the
// recursive-descent Recognizer cannot handle (left recursion, ambiguity).
// Literals become terminal tokens with synthetic token values; an
// alternative consisting solely of empty literals becomes an epsilon rule.
// Every referenced symbol must be defined by the grammar itself, as
// builtin bindings have no LR counterpart.
func LRAnalysis(g *Grammar, name string) (*lr.LRAnalysis, error) {
	b := lr.NewGrammarBuilder(name)
	tokvals := make(map[string]int)
	for _, pname := range g.order {
		prod := g.prods[pname]
		for i := 0; i < prod.alternatives.Size(); i++ {
			v, _ := prod.alternatives.Get(i)
			seq := nonEmpty(v.([]term))
			if len(seq) == 0 {
				b.LHS(pname).Epsilon()
				continue
			}
			rb := b.LHS(pname)
			for _, tm := range seq {
				if tm.isRef {
					if _, ok := g.prods[tm.symbol]; !ok {
						return nil, fmt.Errorf("bnf: symbol <%s> is not defined", tm.symbol)
					}
					rb = rb.N(tm.symbol)
				} else {
					tv, ok := tokvals[tm.lit]
					if !ok {
						tv = tokenBase + len(tokvals)
						tokvals[tm.lit] = tv
					}
					rb = rb.T(strconv.Quote(tm.lit), tv)
				}
			}
			rb.End()
		}
	}
	grm, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	return lr.Analysis(grm), nil
}

// nonEmpty strips empty literals, which match nothing, from a sequence.
func nonEmpty(seq []term) []term {
	res := seq[:0:0]
	for _, tm := range seq {
		if !tm.isRef && tm.lit == "" {
			continue
		}
		res = append(res, tm)
	}
	return res
}
