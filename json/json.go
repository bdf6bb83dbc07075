package json

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/parsec"
)

// The value grammar is mutually recursive (objects and arrays contain
// values), so it is constructed once, with Forward placeholders for the
// container rules.
var jsonValue parsec.Parser = newValueParser()

// Value returns the parser for a single JSON value, for embedding into
// larger grammars. The parser produces one of string, int, bool, nil,
// []interface{} or *linkedhashmap.Map.
func Value() parsec.Parser {
	return jsonValue
}

// Parse parses input as a single JSON value, anchored at the end of input.
func Parse(input string) (interface{}, error) {
	st, err := parsec.Run(parsec.Sequence(parsec.Token(jsonValue), parsec.EOF), input)
	if err != nil {
		tracer().Errorf("JSON parse failed: %v", err)
		return nil, err
	}
	return st.Value[0], nil
}

func newValueParser() parsec.Parser {
	var object, array parsec.Forward

	// A JSON string, double-quoted. Escape sequences are not interpreted.
	str := parsec.Text(parsec.DoubleQuoted(parsec.Many(parsec.NoneOf("\""))))

	boolean := parsec.Choose(
		parsec.Coerce(constant(true), literal("true")),
		parsec.Coerce(constant(false), literal("false")),
	)
	null := parsec.Coerce(constant(nil), literal("null"))

	value := parsec.Choose(str, parsec.Integer, boolean, null, object.Parse, array.Parse)

	// A key-value pair, separated by a colon.
	keyValue := parsec.AsList(parsec.Sequence(
		parsec.Token(str),
		parsec.Discard(parsec.Char(':')),
		parsec.Token(value),
	))

	comma := parsec.Token(parsec.Char(','))

	object.Set(parsec.Coerce(buildObject,
		parsec.Between(parsec.Char('{'), parsec.Char('}'),
			parsec.SepBy(comma, keyValue))))

	array.Set(parsec.Coerce(buildArray,
		parsec.Between(parsec.Char('['), parsec.Char(']'),
			parsec.SepBy(comma, parsec.Token(value)))))

	return value
}

// literal matches an exact keyword, producing no values.
func literal(lit string) parsec.Parser {
	ps := make([]parsec.Parser, 0, len(lit))
	for _, r := range lit {
		ps = append(ps, parsec.Char(r))
	}
	return parsec.Discard(parsec.Sequence(ps...))
}

func constant(x interface{}) func([]interface{}) interface{} {
	return func([]interface{}) interface{} {
		return x
	}
}

func buildObject(vals []interface{}) interface{} {
	m := linkedhashmap.New()
	for _, v := range vals {
		pair := v.([]interface{})
		m.Put(pair[0], pair[1])
	}
	return m
}

func buildArray(vals []interface{}) interface{} {
	res := make([]interface{}, len(vals))
	copy(res, vals)
	return res
}
