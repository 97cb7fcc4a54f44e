package lint

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/cssselect"
)

// token is one lexed CSS token.
type token struct {
	tt   css.TokenType
	text string
}

// lex splits value into CSS tokens.
func lex(value string) []token {
	lexer := css.NewLexer(parse.NewInputString(value))

	var tokens []token
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}
		tokens = append(tokens, token{tt: tt, text: string(text)})
	}
	return tokens
}

// isIdent reports whether value lexes as exactly one identifier. Names
// starting with "--" lex as custom property names but are valid identifiers.
func isIdent(tokens []token) bool {
	if len(tokens) != 1 {
		return false
	}
	return tokens[0].tt == css.IdentToken || tokens[0].tt == css.CustomPropertyNameToken
}

// prefixes a caller may wrongly include in a fragment value.
var redundantPrefix = map[cssselect.Kind]string{
	cssselect.KindID:            "#",
	cssselect.KindClass:         ".",
	cssselect.KindPseudoClass:   ":",
	cssselect.KindPseudoElement: "::",
}

// checkFragment returns issue texts for a fragment value. The builder accepts
// any text; these checks flag values that render into invalid CSS.
func checkFragment(kind cssselect.Kind, value string) []string {
	if value == "" {
		return []string{fmt.Sprintf(IssueEmptyValue, kind)}
	}

	if prefix, ok := redundantPrefix[kind]; ok && strings.HasPrefix(value, prefix) {
		return []string{fmt.Sprintf(IssueRedundantPrefix, kind, value, prefix)}
	}

	tokens := lex(value)
	if len(tokens) == 0 {
		return []string{fmt.Sprintf(IssueInvalidIdent, kind, value)}
	}

	switch kind {
	case cssselect.KindElement:
		if len(tokens) == 1 && tokens[0].tt == css.DelimToken && tokens[0].text == "*" {
			return nil
		}
		if !isIdent(tokens) {
			return []string{fmt.Sprintf(IssueInvalidIdent, kind, value)}
		}

	case cssselect.KindID, cssselect.KindClass, cssselect.KindPseudoElement:
		if !isIdent(tokens) {
			return []string{fmt.Sprintf(IssueInvalidIdent, kind, value)}
		}

	case cssselect.KindAttribute:
		if tokens[0].tt == css.LeftBracketToken {
			return []string{fmt.Sprintf(IssueRedundantPrefix, kind, value, "[")}
		}
		if tokens[0].tt != css.IdentToken {
			return []string{fmt.Sprintf(IssueAttributeSyntax, value)}
		}

	case cssselect.KindPseudoClass:
		if isIdent(tokens) {
			return nil
		}
		last := tokens[len(tokens)-1]
		if tokens[0].tt != css.FunctionToken || last.tt != css.RightParenthesisToken {
			return []string{fmt.Sprintf(IssuePseudoClassSyntax, value)}
		}
	}
	return nil
}

// checkCombinator flags tokens other than the four CSS combinators.
func checkCombinator(name string) []string {
	if cssselect.ParseCombinator(name).Standard() {
		return nil
	}
	return []string{fmt.Sprintf(IssueNonStandardCombinator, name)}
}
