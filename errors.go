package cssselect

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers branch with errors.Is; the typed errors below carry
// the details and match their sentinel.
var (
	// ErrDuplicateFragment reports a second element, id or pseudo-element on one selector.
	ErrDuplicateFragment = errors.New("cssselect: duplicate fragment")
	// ErrOrderViolation reports a fragment added after a grammar-later kind.
	ErrOrderViolation = errors.New("cssselect: fragment out of order")
	// ErrCombinedFragment reports a fragment added to a selector produced by Combine.
	ErrCombinedFragment = errors.New("cssselect: fragment added to combined selector")
	// ErrNilSelector reports a nil operand passed to Combine.
	ErrNilSelector = errors.New("cssselect: nil selector")
	// ErrUnknownKind reports a kind name ParseKind does not recognise.
	ErrUnknownKind = errors.New("cssselect: unknown fragment kind")
)

// DuplicateFragmentError is returned when a singleton kind is set twice.
type DuplicateFragmentError struct {
	Kind     Kind
	Value    string // rejected value
	Existing string // value already set
}

func (e *DuplicateFragmentError) Error() string {
	return fmt.Sprintf("cssselect: %s may occur only once per selector (have %q, got %q)",
		e.Kind, e.Existing, e.Value)
}

// Is matches ErrDuplicateFragment.
func (e *DuplicateFragmentError) Is(target error) bool {
	return target == ErrDuplicateFragment
}

// OrderViolationError is returned when a kind is added after a kind that
// follows it in the grammar.
type OrderViolationError struct {
	Kind  Kind // kind being added
	After Kind // grammar-latest kind already present
}

func (e *OrderViolationError) Error() string {
	return fmt.Sprintf("cssselect: %s cannot follow %s; fragments must be ordered element, id, class, attribute, pseudoClass, pseudoElement",
		e.Kind, e.After)
}

// Is matches ErrOrderViolation.
func (e *OrderViolationError) Is(target error) bool {
	return target == ErrOrderViolation
}
