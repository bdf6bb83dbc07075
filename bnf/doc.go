/*
Package bnf reads grammars in BNF notation and compiles them into parsers.

Content

BNF (Backus–Naur form) is the classic notation for context-free grammars:
a set of productions, each mapping a symbol to one or more alternative
sequences of symbols and terminals. This package understands the textbook
dialect of the notation,

  <name> ::= <word> " " <word>
  <word> ::= <letter> <word> | ""

with one production per line, double-quoted terminals, alternatives
separated by '|', and "" for the empty alternative. The reader for the
notation is itself built from parsec combinators.

A Compiler turns a Grammar into a parsec recognizer. Symbols a grammar
references but does not define may be bound to builtin parsers
beforehand:

  g, _ := bnf.Parse(src)
  c := bnf.NewCompiler()
  c.Bind("letter", parsec.Letter)
  ok, err := c.Recognize(g, "name", "ada lovelace")

The compiled recognizer is a recursive-descent parser; left-recursive
productions will recurse without bound. Grammars needing left recursion
can be exported to a gorgo LR grammar with LRAnalysis instead and run
with gorgo's Earley or LR machinery.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package bnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to parsec.bnf.
func tracer() tracing.Trace {
	return tracing.Select("parsec.bnf")
}
