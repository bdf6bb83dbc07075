package bnf

import (
	"fmt"
	"testing"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const nameGrammar = `
<name> ::= <word> " " <word>
<word> ::= <letter> <word> | ""
`

func ExampleParse() {
	g, err := Parse(nameGrammar)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g)
	// Output: <name> ::= <word> " " <word>
	// <word> ::= <letter> <word> | ""
}

func TestParseGrammar(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g, err := Parse(nameGrammar)
	if err != nil {
		t.Fatalf("cannot read grammar: %v", err)
	}
	prods := g.Productions()
	if len(prods) != 2 || prods[0] != "name" || prods[1] != "word" {
		t.Errorf("Expected productions [name word], is %v", prods)
	}
}

func TestParseMergesDuplicates(t *testing.T) {
	g, err := Parse("<d> ::= \"x\"\n<d> ::= \"y\"\n")
	if err != nil {
		t.Fatalf("cannot read grammar: %v", err)
	}
	if len(g.Productions()) != 1 {
		t.Fatalf("Expected a single production, is %v", g.Productions())
	}
	if g.String() != `<d> ::= "x" | "y"` {
		t.Errorf("Expected alternatives to accumulate, is %s", g)
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"",                     // no productions at all
		"<a> := \"x\"",         // not the defines-symbol
		"<a> ::=",              // no alternative
		"<a> ::= \"x\" <b",     // unclosed symbol bracket
		"word ::= \"x\"",       // left-hand side must be a symbol
		"<a> ::= \"unclosed",   // unterminated literal
	} {
		if _, err := Parse(src); err == nil {
			t.Errorf("Expected Parse(%q) to fail", src)
		}
	}
}

func TestRecognize(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g, err := Parse(nameGrammar)
	if err != nil {
		t.Fatalf("cannot read grammar: %v", err)
	}
	c := NewCompiler()
	c.Bind("letter", parsec.Letter)
	inputs := []struct {
		input string
		want  bool
	}{
		{"ada lovelace", true},
		{"ada", false},       // the grammar insists on two words
		{" ", true},          // two empty words
		{"", false},          // not even a space
		{"ada lovelace x", false},
		{"a b", true},
	}
	for _, cse := range inputs {
		ok, err := c.Recognize(g, "name", cse.input)
		if err != nil {
			t.Errorf("Recognize(%q) failed: %v", cse.input, err)
			continue
		}
		if ok != cse.want {
			t.Errorf("Expected Recognize(%q) to be %v, is %v", cse.input, cse.want, ok)
		}
	}
}

func TestRecognizerUndefinedSymbol(t *testing.T) {
	g, err := Parse("<a> ::= <b>\n")
	if err != nil {
		t.Fatalf("cannot read grammar: %v", err)
	}
	if _, err = NewCompiler().Recognizer(g, "a"); err == nil {
		t.Error("Expected an error for the undefined symbol <b>")
	}
	if _, err = NewCompiler().Recognizer(g, "nosuch"); err == nil {
		t.Error("Expected an error for an undefined start symbol")
	}
}

func TestRecognizeWithValues(t *testing.T) {
	// A compiled parser is an ordinary parsec parser; builtins may
	// produce values.
	g, err := Parse("<greeting> ::= <word> \"!\"\n")
	if err != nil {
		t.Fatalf("cannot read grammar: %v", err)
	}
	c := NewCompiler()
	c.Bind("word", parsec.Word)
	p, err := c.Recognizer(g, "greeting")
	if err != nil {
		t.Fatalf("cannot compile grammar: %v", err)
	}
	st, err := parsec.Run(p, "Hello!")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(st.Value) != 1 || st.Value[0] != "Hello" {
		t.Errorf("Expected the word value to survive, is %v", st.Value)
	}
}

func TestLRAnalysis(t *testing.T) {
	g, err := Parse("<name> ::= <word> \" \" <word>\n<word> ::= \"a\" <word> | \"\"\n")
	if err != nil {
		t.Fatalf("cannot read grammar: %v", err)
	}
	lrg, err := LRAnalysis(g, "name")
	if err != nil {
		t.Fatalf("LR export failed: %v", err)
	}
	if lrg == nil {
		t.Fatal("Expected an analyzed grammar, is nil")
	}
}

func TestLRAnalysisUndefinedSymbol(t *testing.T) {
	g, err := Parse(nameGrammar) // references the builtin <letter>
	if err != nil {
		t.Fatalf("cannot read grammar: %v", err)
	}
	if _, err = LRAnalysis(g, "name"); err == nil {
		t.Error("Expected LR export to reject builtin symbol references")
	}
}
