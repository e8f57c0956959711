package codon

import (
	"fmt"
	"io"
)

// noSubs is printed when no point mutation can make the substitution.
const noSubs = "No Possible Point Mutations"

// WriteCompact writes each substitution as a tab-separated
// position/old/new line.
func WriteCompact(w io.Writer, subs []Substitution) {
	if len(subs) == 0 {
		fmt.Fprintln(w, noSubs)
		return
	}
	for _, s := range subs {
		fmt.Fprintf(w, "%d\t%c\t%c\n", s.Position, s.Old, s.New)
	}
}

// WriteReport writes a bordered report with the starting codon, the
// requested amino acid, the position(s) searched, and the nucleotide
// changes found at each position (or "None").
func WriteReport(w io.Writer, codon, aa string, pos int, subs []Substitution) {
	fmt.Fprintln(w, "--------------- Start Report ---------------")
	fmt.Fprintf(w, "Start Codon: %s   Substitute to: %s\n", codon, aa)
	if pos != 0 {
		fmt.Fprintf(w, "Position(s): %d\n", pos)
	} else {
		fmt.Fprintln(w, "Position(s): All")
	}
	fmt.Fprintln(w, "Results:")

	switch {
	case len(subs) == 0:
		fmt.Fprintln(w, noSubs)
	case pos != 0:
		fmt.Fprintf(w, "Position %d:\n", pos)
		for _, s := range subs {
			fmt.Fprintf(w, "\t%c -> %c\n", s.Old, s.New)
		}
	default:
		for p := 1; p <= 3; p++ {
			fmt.Fprintf(w, "Position %d:\n", p)
			found := false
			for _, s := range subs {
				if s.Position == p {
					fmt.Fprintf(w, "\t%c -> %c\n", s.Old, s.New)
					found = true
				}
			}
			if !found {
				fmt.Fprintln(w, "\tNone")
			}
		}
	}
	fmt.Fprintln(w, "---------------- End Report ----------------")
}
