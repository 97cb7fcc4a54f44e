package cssselect

import "strings"

// slot holds a singleton fragment.
type slot struct {
	value string
	set   bool
}

// Builder accumulates selector fragments and renders them in grammar order.
//
// Fragment methods return the receiver so calls can be chained. The first
// contract violation on a chain is recorded and every later fragment call
// becomes a no-op; Render and Err report it.
//
//	sel, err := cssselect.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Render()
//	// sel == `a[href$=".png"]:focus`
type Builder struct {
	element       slot
	id            slot
	pseudoElement slot

	classes       []string
	attrs         []string
	pseudoClasses []string

	seen []Kind // kinds in order of first addition

	combined *string // set only by Combine
	err      error
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Element adds the element (type) selector, rendered as-is.
func (b *Builder) Element(value string) *Builder {
	return b.Add(KindElement, value)
}

// ID adds the id selector, rendered as "#value".
func (b *Builder) ID(value string) *Builder {
	return b.Add(KindID, value)
}

// Class appends a class selector, rendered as ".value".
func (b *Builder) Class(value string) *Builder {
	return b.Add(KindClass, value)
}

// Attr appends an attribute selector, rendered as "[value]". The value is the
// bracket interior, e.g. `href$=".png"`.
func (b *Builder) Attr(value string) *Builder {
	return b.Add(KindAttribute, value)
}

// PseudoClass appends a pseudo-class, rendered as ":value".
func (b *Builder) PseudoClass(value string) *Builder {
	return b.Add(KindPseudoClass, value)
}

// PseudoElement adds the pseudo-element, rendered as "::value".
func (b *Builder) PseudoElement(value string) *Builder {
	return b.Add(KindPseudoElement, value)
}

// Add adds a fragment of the given kind.
func (b *Builder) Add(kind Kind, value string) *Builder {
	if b.err != nil {
		return b
	}
	if b.combined != nil {
		b.err = ErrCombinedFragment
		return b
	}
	if !kind.Valid() {
		b.err = ErrUnknownKind
		return b
	}

	if s := b.singleton(kind); s != nil && s.set {
		b.err = &DuplicateFragmentError{Kind: kind, Value: value, Existing: s.value}
		return b
	}
	if latest, ok := b.latest(); ok && kind < latest {
		b.err = &OrderViolationError{Kind: kind, After: latest}
		return b
	}

	switch kind {
	case KindClass:
		b.classes = append(b.classes, value)
	case KindAttribute:
		b.attrs = append(b.attrs, value)
	case KindPseudoClass:
		b.pseudoClasses = append(b.pseudoClasses, value)
	default:
		*b.singleton(kind) = slot{value: value, set: true}
	}

	if n := len(b.seen); n == 0 || b.seen[n-1] != kind {
		b.seen = append(b.seen, kind)
	}
	return b
}

// singleton returns the slot for a singleton kind, nil for repeatable kinds.
func (b *Builder) singleton(kind Kind) *slot {
	switch kind {
	case KindElement:
		return &b.element
	case KindID:
		return &b.id
	case KindPseudoElement:
		return &b.pseudoElement
	}
	return nil
}

// latest returns the grammar-latest kind seen so far.
func (b *Builder) latest() (Kind, bool) {
	if len(b.seen) == 0 {
		return 0, false
	}
	latest := b.seen[0]
	for _, k := range b.seen[1:] {
		if k > latest {
			latest = k
		}
	}
	return latest, true
}

// Render returns the selector text. It never mutates the builder, so repeated
// calls return the same result.
func (b *Builder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.combined != nil {
		return *b.combined, nil
	}

	var sb strings.Builder
	for _, kind := range b.seen {
		switch kind {
		case KindElement:
			sb.WriteString(b.element.value)
		case KindID:
			sb.WriteString("#" + b.id.value)
		case KindClass:
			for _, c := range b.classes {
				sb.WriteString("." + c)
			}
		case KindAttribute:
			for _, a := range b.attrs {
				sb.WriteString("[" + a + "]")
			}
		case KindPseudoClass:
			for _, p := range b.pseudoClasses {
				sb.WriteString(":" + p)
			}
		case KindPseudoElement:
			sb.WriteString("::" + b.pseudoElement.value)
		}
	}
	return sb.String(), nil
}

// String implements fmt.Stringer. It returns "" when the chain holds an error.
func (b *Builder) String() string {
	s, err := b.Render()
	if err != nil {
		return ""
	}
	return s
}

// Err returns the first violation recorded on the chain, or nil.
func (b *Builder) Err() error {
	return b.err
}

// Combined reports whether the builder was produced by Combine.
func (b *Builder) Combined() bool {
	return b.combined != nil
}
