/*
Package tokens feeds combinator-built lexers to gorgo parsers.

Grammars run by gorgo's LR and Earley parsers pull their input from a
scanner.Tokenizer. This package provides a Tokenizer whose token
recognition is done by parsec parsers: clients describe each token type
with a Rule pairing a token value with the parser for its lexeme, and
the Tokenizer hands matching lexemes to the gorgo machinery one by one.

  rules := []tokens.Rule{
      {TokType: ident, Parser: parsec.Word},
      {TokType: number, Parser: parsec.Integer},
  }
  tokenizer, err := tokens.NewTokenizer(input, rules)

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tokens

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to parsec.tokens.
func tracer() tracing.Trace {
	return tracing.Select("parsec.tokens")
}
