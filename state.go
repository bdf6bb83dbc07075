package parsec

import (
	"fmt"
)

// State captures the progress of a parse. In other words, it is how a parser
// remembers what it has finished and what is left to parse.
//
// States are values. Parsers never modify the state they receive; they
// return a new one. This is what makes alternatives (see Choose) cheap:
// a failed alternative simply drops its state and the next alternative
// starts over from the original one.
type State struct {
	Value     []interface{} // results of the parse, so far
	Remaining string        // portion of the input that has yet to be parsed
	Pos       int           // byte offset of Remaining within the original input
}

// NewState wraps an input string into a fresh parse state, with no results
// and all of the input remaining.
func NewState(input string) State {
	return State{Remaining: input}
}

// push returns a copy of st with x appended to the results. The value slice
// is copied; states produced from a common ancestor never share it.
func (st State) push(x interface{}) State {
	vals := make([]interface{}, len(st.Value)+1)
	copy(vals, st.Value)
	vals[len(st.Value)] = x
	return State{Value: vals, Remaining: st.Remaining, Pos: st.Pos}
}

// consume returns a copy of st with the first size bytes of the remaining
// input consumed.
func (st State) consume(size int) State {
	return State{Value: st.Value, Remaining: st.Remaining[size:], Pos: st.Pos + size}
}

func (st State) String() string {
	return fmt.Sprintf("[%d values | %q at %d]", len(st.Value), st.Remaining, st.Pos)
}

// ParseFail is the error returned when a parser cannot accept the input in
// front of it. It remembers what the state was when the parse failed and
// what the parser was expecting.
type ParseFail struct {
	State    State  // state at the point of failure
	Expected string // what the failing parser was expecting
}

func (e *ParseFail) Error() string {
	return fmt.Sprintf("parsec: expected %s at position %d", e.Expected, e.State.Pos)
}

func fail(st State, expected string) error {
	return &ParseFail{State: st, Expected: expected}
}
