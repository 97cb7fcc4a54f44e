// Package cssselect builds CSS selector strings from individual fragments.
//
// A selector is assembled from element, id, class, attribute, pseudo-class and
// pseudo-element fragments. The builder enforces the CSS grammar order
// (element, id, class, attribute, pseudo-class, pseudo-element) and allows
// element, id and pseudo-element at most once.
//
// # Building
//
//	sel, err := cssselect.ID("main").Class("container").Class("editable").Render()
//	// "#main.container.editable"
//
// # Combining
//
//	sel, err := cssselect.Combine(
//		cssselect.Element("div").ID("main"),
//		cssselect.NextSibling,
//		cssselect.Element("table").ID("data"),
//	).Render()
//	// "div#main + table#data"
//
// # Errors
//
// Violations are recorded on the chain and returned by Render:
//
//	_, err := cssselect.Element("a").Element("b").Render()
//	errors.Is(err, cssselect.ErrDuplicateFragment) // true
//
// # CLI Tool
//
// cssselect also provides a CLI for building, rendering and linting selector
// documents. Install with:
//
//	go install github.com/yacobolo/cssselect/cmd/cssselect@latest
package cssselect
