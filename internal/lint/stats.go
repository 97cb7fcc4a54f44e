package lint

import (
	"fmt"

	"github.com/yacobolo/cssselect"
	"github.com/yacobolo/cssselect/internal/document"
)

// Stats counts what the linted documents define.
type Stats struct {
	Fragments    map[cssselect.Kind]int
	Combinations int
	References   int
}

// count adds a definition and its inline operands. Refs are counted, not
// followed.
func (s *Stats) count(def *document.Definition) {
	if def.Ref != "" {
		s.References++
	}
	for _, f := range def.Fragments {
		if s.Fragments == nil {
			s.Fragments = make(map[cssselect.Kind]int)
		}
		s.Fragments[f.Kind]++
	}
	if cb := def.Combine; cb != nil {
		s.Combinations++
		if cb.Left != nil {
			s.count(cb.Left)
		}
		if cb.Right != nil {
			s.count(cb.Right)
		}
	}
}

// TotalFragments sums the fragment counts.
func (s Stats) TotalFragments() int {
	total := 0
	for _, n := range s.Fragments {
		total += n
	}
	return total
}

// PrintStatistics outputs detailed document statistics
func (r *Reporter) PrintStatistics(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, paint(headerStyle, "Selector Statistics", r.useColors))
	fmt.Fprintln(r.w, "-------------------")

	r.statRow("Files Scanned", result.FilesScanned)
	r.statRow("Selectors Checked", result.SelectorsChecked)
	r.statRow("Combinations", result.Stats.Combinations)
	r.statRow("References", result.Stats.References)
	r.statRow("Fragments", result.Stats.TotalFragments())
	for _, kind := range cssselect.Kinds {
		if n := result.Stats.Fragments[kind]; n > 0 {
			r.statRow("  "+kind.String(), n)
		}
	}
}

func (r *Reporter) statRow(label string, n int) {
	fmt.Fprintf(r.w, "%-20s%d\n", label+":", n)
}
