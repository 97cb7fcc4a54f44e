package cssselect

import (
	"fmt"
	"strings"
)

// Kind identifies a selector fragment kind. Kinds are declared in CSS grammar
// order, so comparing two kinds compares their grammar positions.
type Kind int

// Fragment kinds in grammar order.
const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

// Kinds lists every fragment kind in grammar order.
var Kinds = []Kind{
	KindElement,
	KindID,
	KindClass,
	KindAttribute,
	KindPseudoClass,
	KindPseudoElement,
}

var kindNames = map[Kind]string{
	KindElement:       "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudoClass",
	KindPseudoElement: "pseudoElement",
}

// kindAliases maps accepted spellings (lowercased) to kinds.
var kindAliases = map[string]Kind{
	"element":        KindElement,
	"tag":            KindElement,
	"id":             KindID,
	"class":          KindClass,
	"attr":           KindAttribute,
	"attribute":      KindAttribute,
	"pseudoclass":    KindPseudoClass,
	"pseudo-class":   KindPseudoClass,
	"pseudoelement":  KindPseudoElement,
	"pseudo-element": KindPseudoElement,
}

// String returns the kind name ("element", "pseudoClass", ...).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindElement && k <= KindPseudoElement
}

// Repeatable reports whether the kind may appear more than once per selector.
func (k Kind) Repeatable() bool {
	return k == KindClass || k == KindAttribute || k == KindPseudoClass
}

// ParseKind resolves a kind name. Both camelCase and kebab-case spellings are
// accepted ("pseudoClass", "pseudo-class"), as well as "attr" and "tag".
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
