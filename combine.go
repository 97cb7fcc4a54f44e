package cssselect

// Combinator joins two selectors.
type Combinator string

// Standard CSS combinators.
const (
	Descendant        Combinator = " "
	Child             Combinator = ">"
	NextSibling       Combinator = "+"
	SubsequentSibling Combinator = "~"
)

// Combinators lists the standard combinators.
var Combinators = []Combinator{Descendant, Child, NextSibling, SubsequentSibling}

// Standard reports whether c is one of the four CSS combinators.
func (c Combinator) Standard() bool {
	for _, s := range Combinators {
		if c == s {
			return true
		}
	}
	return false
}

// Combine returns a new selector joining the receiver (left) and other (right)
// as "<left> <c> <right>". Exactly one space is placed on each side of the
// combinator, including the descendant combinator, which therefore renders as
// three spaces.
//
// Both operands are rendered now; changing an operand later does not affect
// the result. The result is terminal: fragment calls on it record
// ErrCombinedFragment. An operand error is carried by the result, left first.
func (b *Builder) Combine(other *Builder, c Combinator) *Builder {
	out := &Builder{}
	if b == nil || other == nil {
		out.err = ErrNilSelector
		return out
	}

	left, err := b.Render()
	if err != nil {
		out.err = err
		return out
	}
	right, err := other.Render()
	if err != nil {
		out.err = err
		return out
	}

	text := left + " " + string(c) + " " + right
	out.combined = &text
	return out
}

var combinatorNames = map[string]Combinator{
	"descendant":         Descendant,
	"child":              Child,
	"next-sibling":       NextSibling,
	"adjacent":           NextSibling,
	"subsequent-sibling": SubsequentSibling,
	"general-sibling":    SubsequentSibling,
}

// ParseCombinator resolves a combinator name ("child", "descendant", ...) to
// its token. Any other input is returned unchanged as the token.
func ParseCombinator(s string) Combinator {
	if c, ok := combinatorNames[s]; ok {
		return c
	}
	return Combinator(s)
}

// IsCombinatorName reports whether s is a standard combinator token or name.
func IsCombinatorName(s string) bool {
	if _, ok := combinatorNames[s]; ok {
		return true
	}
	return Combinator(s).Standard()
}
