package names

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"

	"github.com/npillmayer/parsec"
)

// A Name is a person's name, split into the two outermost words of the
// input: the given ("first") name and the family ("last") name. For input
// with a single word, both fields hold that word.
type Name struct {
	First string
	Last  string
}

// The name grammar: words of letters, separated by single spaces.
// A word may be empty, so consecutive spaces yield empty words, just as
// splitting the input on spaces would.
var nameParser = parsec.Sequence(
	parsec.SepBy1(parsec.Char(' '), parsec.Text(parsec.Many(parsec.Letter))),
	parsec.EOF,
)

// Parse parses a full name. Words consist of letters; anything else is a
// parse error. For an input with exactly one space, First and Last recover
// the two surrounding substrings exactly. For an input with no space at
// all, First and Last are identical and equal to the whole input. This
// includes the empty string, since the empty string is a valid word.
func Parse(input string) (Name, error) {
	st, err := parsec.Run(nameParser, input)
	if err != nil {
		T().Debugf("name parse failed: %v", err)
		return Name{}, err
	}
	words := st.Value
	return Name{
		First: words[0].(string),
		Last:  words[len(words)-1].(string),
	}, nil
}

// Context carries information about the cultural environment a name is
// displayed in.
type Context struct {
	Locale          string // ISO 639/3166 locale string
	FamilyNameFirst bool   // does this locale put the family name first?
}

// GivenFirstContext is a context for locales with given-name-first order.
var GivenFirstContext = &Context{Locale: "en-US"}

// FamilyFirstContext is a context for locales with family-name-first order.
var FamilyFirstContext = &Context{Locale: "hu-HU", FamilyNameFirst: true}

// familyFirstMatch matches languages in which the family name
// traditionally precedes the given name.
var familyFirstMatch = language.NewMatcher([]language.Tag{
	language.Chinese, // the first language is used as fallback
	language.Japanese,
	language.Korean,
	language.Vietnamese,
	language.Hungarian,
})

// ContextFromEnvironment captures the user's locale and decides the name
// order customary for it.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
		T().Infof("names sets default user locale %v", userLocale)
	} else {
		T().Infof("names detected user locale %v", userLocale)
	}
	lang := language.Make(userLocale)
	_, _, confidence := familyFirstMatch.Match(lang)
	return &Context{
		Locale:          userLocale,
		FamilyNameFirst: confidence != language.No,
	}
}

// DisplayString renders the name in the order customary for ctx. A nil
// context assumes given name first.
func (n Name) DisplayString(ctx *Context) string {
	if ctx != nil && ctx.FamilyNameFirst {
		return n.Last + " " + n.First
	}
	return n.First + " " + n.Last
}
