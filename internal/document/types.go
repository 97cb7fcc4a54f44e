// Package document loads selector documents and compiles their definitions
// into selector strings.
package document

import (
	"errors"
	"fmt"

	"github.com/yacobolo/cssselect"
)

// Document validation errors.
var (
	ErrInvalidDefinition = errors.New("document: definition needs exactly one of fragments, combine or ref")
	ErrInvalidFragment   = errors.New("document: fragment must have exactly one kind key")
	ErrUnknownRef        = errors.New("document: unknown selector reference")
	ErrRefCycle          = errors.New("document: selector reference cycle")
	ErrDuplicateName     = errors.New("document: duplicate selector name")
	ErrMissingCombinator = errors.New("document: combine needs a combinator")
	ErrUnsupportedFormat = errors.New("document: unsupported file extension")
)

// Pos is a 1-based position in a source file. Zero means unknown (JSON input).
type Pos struct {
	Line   int
	Column int
}

// Document is a parsed selector file.
type Document struct {
	Path      string       `yaml:"-" json:"-"`
	Selectors []Definition `yaml:"selectors" json:"selectors"`
}

// Definition describes one selector. Exactly one of Fragments, Combine or Ref
// is set.
type Definition struct {
	Name      string       `yaml:"name,omitempty" json:"name,omitempty"`
	Fragments []Fragment   `yaml:"fragments,omitempty" json:"fragments,omitempty"`
	Combine   *Combination `yaml:"combine,omitempty" json:"combine,omitempty"`
	Ref       string       `yaml:"ref,omitempty" json:"ref,omitempty"`

	Pos Pos `yaml:"-" json:"-"`
}

// Combination joins two definitions.
type Combination struct {
	Left       *Definition `yaml:"left" json:"left"`
	Combinator string      `yaml:"combinator" json:"combinator"`
	Right      *Definition `yaml:"right" json:"right"`
}

// Fragment is one selector fragment, written as a single-key mapping such as
// `class: active`.
type Fragment struct {
	Kind  cssselect.Kind
	Value string

	Pos Pos
}

// Error attaches a source location and selector name to a failure.
type Error struct {
	Path string
	Pos  Pos
	Name string
	Err  error
}

func (e *Error) Error() string {
	loc := e.Path
	if e.Pos.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", e.Path, e.Pos.Line, e.Pos.Column)
	}
	if e.Name != "" {
		return fmt.Sprintf("%s: selector %q: %v", loc, e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// at wraps err with pos unless it already carries a location.
func at(pos Pos, err error) error {
	var located *Error
	if errors.As(err, &located) {
		return err
	}
	return &Error{Pos: pos, Err: err}
}
