package document

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/cssselect"
)

// Result is the outcome of compiling one top-level definition.
type Result struct {
	File     string `json:"file,omitempty"`
	Name     string `json:"name,omitempty"`
	Selector string `json:"selector,omitempty"`
	Error    string `json:"error,omitempty"`

	Pos Pos   `json:"-"`
	Err error `json:"-"`
}

// Compiler turns documents into selector strings.
type Compiler struct {
	log *zap.Logger
}

// NewCompiler creates a compiler.
func NewCompiler(log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{log: log.Named("compiler")}
}

// Compile builds every top-level definition of doc, in document order. A
// failing definition does not stop the others; the returned error combines
// all failures.
func (c *Compiler) Compile(doc *Document) ([]Result, error) {
	named := make(map[string]*Definition, len(doc.Selectors))
	var errs error

	for i := range doc.Selectors {
		def := &doc.Selectors[i]
		if def.Name == "" {
			continue
		}
		if _, dup := named[def.Name]; dup {
			continue
		}
		named[def.Name] = def
	}

	seenNames := make(map[string]bool, len(doc.Selectors))
	results := make([]Result, 0, len(doc.Selectors))

	for i := range doc.Selectors {
		def := &doc.Selectors[i]
		res := Result{File: doc.Path, Name: def.Name, Pos: def.Pos}

		var err error
		if def.Name != "" && seenNames[def.Name] {
			err = at(def.Pos, fmt.Errorf("%w: %q", ErrDuplicateName, def.Name))
		} else {
			seenNames[def.Name] = true
			var sel string
			sel, err = c.render(def, named)
			res.Selector = sel
		}

		if err != nil {
			err = c.locate(doc.Path, def.Name, err)
			res.Err = err
			res.Error = err.Error()
			errs = multierr.Append(errs, err)
			c.log.Debug("Selector failed", zap.String("name", def.Name), zap.Error(err))
		} else {
			c.log.Debug("Selector compiled", zap.String("name", def.Name), zap.String("selector", res.Selector))
		}
		results = append(results, res)
	}

	return results, errs
}

// Render builds a single definition that does not use refs.
func (c *Compiler) Render(def Definition) (string, error) {
	return c.render(&def, nil)
}

func (c *Compiler) render(def *Definition, named map[string]*Definition) (string, error) {
	b, err := build(def, named, nil)
	if err != nil {
		return "", err
	}
	return b.Render()
}

func (c *Compiler) locate(path, name string, err error) error {
	located, ok := err.(*Error)
	if !ok {
		return &Error{Path: path, Name: name, Err: err}
	}
	out := *located
	out.Path = path
	out.Name = name
	return &out
}

// build turns a definition into a builder. stack holds the refs being
// expanded, for cycle detection.
func build(def *Definition, named map[string]*Definition, stack []string) (*cssselect.Builder, error) {
	set := 0
	if len(def.Fragments) > 0 {
		set++
	}
	if def.Combine != nil {
		set++
	}
	if def.Ref != "" {
		set++
	}
	if set != 1 {
		return nil, at(def.Pos, ErrInvalidDefinition)
	}

	switch {
	case def.Ref != "":
		for _, name := range stack {
			if name == def.Ref {
				return nil, at(def.Pos, fmt.Errorf("%w: %q", ErrRefCycle, def.Ref))
			}
		}
		target, ok := named[def.Ref]
		if !ok {
			return nil, at(def.Pos, fmt.Errorf("%w: %q", ErrUnknownRef, def.Ref))
		}
		return build(target, named, append(stack[:len(stack):len(stack)], def.Ref))

	case def.Combine != nil:
		cb := def.Combine
		if cb.Left == nil || cb.Right == nil {
			return nil, at(def.Pos, ErrInvalidDefinition)
		}
		if cb.Combinator == "" {
			return nil, at(def.Pos, ErrMissingCombinator)
		}
		left, err := build(cb.Left, named, stackFor(def, stack))
		if err != nil {
			return nil, err
		}
		right, err := build(cb.Right, named, stackFor(def, stack))
		if err != nil {
			return nil, err
		}
		out := left.Combine(right, cssselect.ParseCombinator(cb.Combinator))
		if err := out.Err(); err != nil {
			return nil, at(def.Pos, err)
		}
		return out, nil

	default:
		b := cssselect.New()
		for _, f := range def.Fragments {
			if err := b.Add(f.Kind, f.Value).Err(); err != nil {
				return nil, at(f.Pos, err)
			}
		}
		return b, nil
	}
}

// stackFor adds a named definition to the ref stack so a ref back to it is
// reported as a cycle.
func stackFor(def *Definition, stack []string) []string {
	if def.Name == "" {
		return stack
	}
	return append(stack[:len(stack):len(stack)], def.Name)
}
