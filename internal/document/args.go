package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yacobolo/cssselect"
)

// ErrInvalidArgs reports a malformed command-line selector.
var ErrInvalidArgs = errors.New("document: invalid selector arguments")

// ParseArgs turns command-line tokens into a definition. Fragment tokens are
// "kind=value" (split at the first '='); combinator tokens are "+", "~", ">",
// " " or a combinator name such as "child" or "descendant". Combinations nest
// to the right: "a + b ~ c" becomes a + (b ~ c).
func ParseArgs(args []string) (Definition, error) {
	if len(args) == 0 {
		return Definition{}, fmt.Errorf("%w: no fragments given", ErrInvalidArgs)
	}

	var (
		operands    []Definition
		combinators []string
		current     []Fragment
	)

	flush := func() error {
		if len(current) == 0 {
			return fmt.Errorf("%w: combinator without a selector on both sides", ErrInvalidArgs)
		}
		operands = append(operands, Definition{Fragments: current})
		current = nil
		return nil
	}

	for i, arg := range args {
		if cssselect.IsCombinatorName(arg) {
			if err := flush(); err != nil {
				return Definition{}, err
			}
			combinators = append(combinators, arg)
			continue
		}

		kindName, value, ok := strings.Cut(arg, "=")
		if !ok {
			return Definition{}, fmt.Errorf("%w: argument %d %q is not kind=value or a combinator", ErrInvalidArgs, i+1, arg)
		}
		kind, err := cssselect.ParseKind(kindName)
		if err != nil {
			return Definition{}, fmt.Errorf("argument %d: %w", i+1, err)
		}
		current = append(current, Fragment{Kind: kind, Value: value, Pos: Pos{Line: 1, Column: i + 1}})
	}
	if err := flush(); err != nil {
		return Definition{}, err
	}

	def := operands[len(operands)-1]
	for i := len(operands) - 2; i >= 0; i-- {
		left, right := operands[i], def
		def = Definition{Combine: &Combination{
			Left:       &left,
			Combinator: combinators[i],
			Right:      &right,
		}}
	}
	return def, nil
}
