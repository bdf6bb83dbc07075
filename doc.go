/*
Package parsec provides parser combinators.

Content

The goal of parser combinators is to let clients write their parsers just
like they would write their grammar. A parser in this package is a small
function which transforms a parse state; combinators glue such functions
together into larger ones. At the end a parser for a complete grammar is
very readable and maintainable, because it mirrors the productions of the
grammar, rule by rule.

This approach has been popularized by the Haskell library Parsec, which
does a much better job at it.

Typical Usage

Clients compose parsers from the primitives and combinators of this
package and apply them to an input string with Run:

  greeting := parsec.Sequence(parsec.Word, parsec.EOF)
  state, err := parsec.Run(greeting, "Hello")

Every parser receives a State and either returns a new State or an error.
A State remembers two things: the results produced so far, and the portion
of the input that has yet to be parsed. Failure is communicated with an
error of type ParseFail, which remembers the state at the point of failure
and what the failing parser was expecting.

Recursive grammars need a parser value to exist before its definition is
complete. Type Forward is a placeholder for such rules: declare it, wire
its Parse method into the grammar, and fill in the implementation with
Set afterwards.

Sub-packages contain clients of the combinators: a primitive JSON parser,
a reader and compiler for BNF grammar notation, a parser for person names,
and an adapter which makes combinator-built lexers usable as tokenizers
for gorgo's LR and Earley parsers.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package parsec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to parsec.
func tracer() tracing.Trace {
	return tracing.Select("parsec")
}
