/*
Package json implements a primitive JSON parser, built from parsec
combinators.

This is a demonstration client of the combinators, not a replacement for
encoding/json: strings are double-quoted but escape sequences are not
interpreted, and numbers are restricted to integers. Objects, arrays,
booleans and null nest in the usual way.

Typical Usage

  v, err := json.Parse(`{"outer key": 9, "nested key": {"inside": "cold in here"}}`)

Parse yields string, int, bool, nil, []interface{} for arrays, and
*linkedhashmap.Map for objects. Objects preserve the order of their keys.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package json

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to parsec.json.
func tracer() tracing.Trace {
	return tracing.Select("parsec.json")
}
