package parsec

import (
	"testing"
)

func TestOneOf(t *testing.T) {
	p := OneOf("abc")
	for _, input := range []string{"a", "b", "c"} {
		if _, err := Run(p, input); err != nil {
			t.Errorf("Expected OneOf(\"abc\") to accept %q, got %v", input, err)
		}
	}
	if _, err := Run(p, "d"); err == nil {
		t.Error("Expected OneOf(\"abc\") to reject \"d\"")
	}
}

func TestNoneOf(t *testing.T) {
	p := NoneOf("\"")
	if _, err := Run(p, "x"); err != nil {
		t.Errorf("Expected NoneOf to accept 'x', got %v", err)
	}
	if _, err := Run(p, "\""); err == nil {
		t.Error("Expected NoneOf to reject the quote")
	}
}

func TestLetterClasses(t *testing.T) {
	for _, input := range []string{"a", "Z", "é", "漢"} {
		if _, err := Run(Letter, input); err != nil {
			t.Errorf("Expected Letter to accept %q, got %v", input, err)
		}
	}
	for _, input := range []string{"1", " ", "!"} {
		if _, err := Run(Letter, input); err == nil {
			t.Errorf("Expected Letter to reject %q", input)
		}
	}
}

func TestWord(t *testing.T) {
	st, err := Run(Word, "Hello!")
	if err != nil {
		t.Fatalf("Word failed on \"Hello!\": %v", err)
	}
	if st.Value[0] != "Hello" || st.Remaining != "!" {
		t.Errorf("Expected \"Hello\" with \"!\" left, is %v", st)
	}
	if _, err = Run(Word, "123"); err == nil {
		t.Error("Expected Word to fail on digits")
	}
}

func TestInteger(t *testing.T) {
	inputs := []struct {
		input string
		n     int
		rest  string
	}{
		{"42", 42, ""},
		{"-42xyz", -42, "xyz"},
		{"+7", 7, ""},
		{"0", 0, ""},
	}
	for _, c := range inputs {
		st, err := Run(Integer, c.input)
		if err != nil {
			t.Errorf("Integer failed on %q: %v", c.input, err)
			continue
		}
		if st.Value[0] != c.n || st.Remaining != c.rest {
			t.Errorf("Expected %d with %q left for input %q, is %v", c.n, c.rest, c.input, st)
		}
	}
	if _, err := Run(Integer, "-"); err == nil {
		t.Error("Expected Integer to fail on a lone sign")
	}
}

func TestText(t *testing.T) {
	st, err := Run(Text(Many1(Digit)), "123abc")
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if st.Value[0] != "123" {
		t.Errorf("Expected joined text \"123\", is %v", st.Value[0])
	}
}

func TestAsList(t *testing.T) {
	st, err := Run(AsList(Many(Char('a'))), "aa")
	if err != nil {
		t.Fatalf("AsList failed: %v", err)
	}
	list, ok := st.Value[0].([]interface{})
	if !ok || len(list) != 2 {
		t.Errorf("Expected a list of 2 values, is %v", st.Value[0])
	}
}

func TestToken(t *testing.T) {
	st, err := Run(Token(Word), "  Hello \t ")
	if err != nil {
		t.Fatalf("Token(Word) failed: %v", err)
	}
	if st.Value[0] != "Hello" || st.Remaining != "" {
		t.Errorf("Expected surrounding whitespace to be skipped, is %v", st)
	}
}

func TestBetween(t *testing.T) {
	p := Between(Char('('), Char(')'), Integer)
	st, err := Run(p, "(12)")
	if err != nil {
		t.Fatalf("Between failed: %v", err)
	}
	if st.Value[0] != 12 {
		t.Errorf("Expected 12, is %v", st.Value[0])
	}
	if _, err = Run(p, "(12"); err == nil {
		t.Error("Expected Between to fail on a missing closing delimiter")
	}
}

func TestDoubleQuoted(t *testing.T) {
	p := DoubleQuoted(Text(Many(NoneOf("\""))))
	st, err := Run(p, "\"cold in here\"")
	if err != nil {
		t.Fatalf("DoubleQuoted failed: %v", err)
	}
	if st.Value[0] != "cold in here" {
		t.Errorf("Expected the quoted text, is %v", st.Value[0])
	}
}

func TestSepBy1(t *testing.T) {
	p := SepBy1(Char(','), Digit)
	st, err := Run(p, "1,2,3")
	if err != nil {
		t.Fatalf("SepBy1 failed: %v", err)
	}
	if len(st.Value) != 3 || st.Value[2] != "3" {
		t.Errorf("Expected 3 digits, is %v", st.Value)
	}
	if _, err = Run(p, ""); err == nil {
		t.Error("Expected SepBy1 to require at least one occurrence")
	}
}

func TestSepByZero(t *testing.T) {
	st, err := Run(SepBy(Char(','), Digit), "")
	if err != nil {
		t.Fatalf("SepBy failed on empty input: %v", err)
	}
	if len(st.Value) != 0 {
		t.Errorf("Expected no values, is %v", st.Value)
	}
}
