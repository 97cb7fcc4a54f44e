package cssselect

// Element starts a selector with an element fragment.
func Element(value string) *Builder { return New().Element(value) }

// ID starts a selector with an id fragment.
func ID(value string) *Builder { return New().ID(value) }

// Class starts a selector with a class fragment.
func Class(value string) *Builder { return New().Class(value) }

// Attr starts a selector with an attribute fragment.
func Attr(value string) *Builder { return New().Attr(value) }

// PseudoClass starts a selector with a pseudo-class fragment.
func PseudoClass(value string) *Builder { return New().PseudoClass(value) }

// PseudoElement starts a selector with a pseudo-element fragment.
func PseudoElement(value string) *Builder { return New().PseudoElement(value) }

// Combine joins left and right with the combinator c. See Builder.Combine.
func Combine(left *Builder, c Combinator, right *Builder) *Builder {
	return left.Combine(right, c)
}
