package parsec

// Parser is a function which transforms a parse state: it consumes a portion
// of the remaining input and appends the results of the parse to the state's
// value. A parser which cannot accept the input in front of it returns an
// error, usually of type ParseFail.
type Parser func(State) (State, error)

// Run applies parser p to an input string, starting from a fresh state.
func Run(p Parser, input string) (State, error) {
	return p(NewState(input))
}

// Identity is a parser that always succeeds and has no effect on the state:
// it does not consume any input and it does not add any new result.
func Identity(st State) (State, error) {
	return st, nil
}

// Pure returns a parser which inserts x into the parse result, but does not
// consume any input.
func Pure(x interface{}) Parser {
	return func(st State) (State, error) {
		return st.push(x), nil
	}
}

// Sequence runs the given parsers one after the other, each one continuing
// where the previous one left off. It fails as soon as one of them fails.
func Sequence(parsers ...Parser) Parser {
	return func(st State) (State, error) {
		var err error
		for _, p := range parsers {
			st, err = p(st)
			if err != nil {
				return State{}, err
			}
		}
		return st, nil
	}
}

// Choose returns a parser that tries the given parsers in order and commits
// to the first one that succeeds. This is like "(a|b|c)" in a regular
// expression. If all alternatives fail, the error of the last one is
// reported.
func Choose(parsers ...Parser) Parser {
	return func(st State) (State, error) {
		if len(parsers) == 0 {
			return st, nil
		}
		var err error
		for _, p := range parsers {
			var next State
			next, err = p(st)
			if err == nil {
				return next, nil
			}
			tracer().Debugf("alternative failed: %v", err)
		}
		return State{}, err
	}
}

// Maybe returns a parser that allows p to fail silently, like "?" in a
// regular expression.
func Maybe(p Parser) Parser {
	return Choose(p, Identity)
}

// Many returns a parser that runs p as many times as it can until it fails,
// like "*" in a regular expression. The technical term is Kleene star.
//
// Many stops as soon as p succeeds without consuming input; otherwise a
// parser like Many(Maybe(p)) would never terminate.
func Many(p Parser) Parser {
	return func(st State) (State, error) {
		for {
			next, err := p(st)
			if err != nil {
				return st, nil
			}
			if next.Pos == st.Pos {
				return next, nil
			}
			st = next
		}
	}
}

// Many1 is like Many but requires at least one occurrence, like "+" in a
// regular expression.
func Many1(p Parser) Parser {
	return Sequence(p, Many(p))
}

// EOF is a parser that accepts the end of input and fails otherwise, like
// "$" in a regular expression.
func EOF(st State) (State, error) {
	if st.Remaining == "" {
		return st, nil
	}
	return State{}, fail(st, "the end of input")
}

// Discard returns a parser that runs p and throws away the results it
// produced, keeping only its consumption of input.
func Discard(p Parser) Parser {
	return func(st State) (State, error) {
		next, err := p(st)
		if err != nil {
			return State{}, err
		}
		return State{Value: st.Value, Remaining: next.Remaining, Pos: next.Pos}, nil
	}
}

// Forward is a placeholder for a parser that is defined in terms of itself.
// Recursive grammar rules need a parser value to exist before its definition
// is complete; clients declare a Forward, wire its Parse method into the
// grammar, and fill in the implementation with Set afterwards:
//
//   var word parsec.Forward
//   word.Set(parsec.Choose(parsec.Sequence(parsec.Letter, word.Parse), parsec.Identity))
//
// A Forward must not be copied after first use.
type Forward struct {
	impl Parser
}

// Set fills in the implementation of the placeholder.
func (f *Forward) Set(p Parser) {
	f.impl = p
}

// Parse delegates to the parser set with Set. The method value f.Parse is a
// Parser and may be wired into a grammar before Set has been called.
func (f *Forward) Parse(st State) (State, error) {
	if f.impl == nil {
		return State{}, fail(st, "a grammar rule (Forward parser not filled in)")
	}
	return f.impl(st)
}
