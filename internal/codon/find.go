package codon

// Substitution is one point mutation: the codon position that changed and
// the nucleotides before and after.
type Substitution struct {
	// Position of the mutation in the codon (1-based)
	Position int

	// Old nucleotide at that position
	Old byte

	// New nucleotide after the mutation
	New byte
}

// Find enumerates the single-nucleotide substitutions that turn codon into
// a codon encoding aa. pos restricts the search to one codon position
// (1, 2 or 3); 0 searches all three. The input codon itself is never a
// candidate. A nil result means no point mutation can make the change.
//
// Both arguments must already be validated with ParseCodon/ParseAminoAcid.
func Find(codon, aa string, pos int) []Substitution {
	var subs []Substitution
	for _, cand := range Table[aa] {
		if cand == codon {
			continue
		}

		if pos != 0 {
			// the two unfiltered positions must match exactly
			switch {
			case pos == 1 && codon[1] == cand[1] && codon[2] == cand[2],
				pos == 2 && codon[0] == cand[0] && codon[2] == cand[2],
				pos == 3 && codon[0] == cand[0] && codon[1] == cand[1]:
				subs = append(subs, Substitution{pos, codon[pos-1], cand[pos-1]})
			}
			continue
		}

		// no filter: each position qualifies independently when the
		// other two match
		if codon[1] == cand[1] && codon[2] == cand[2] {
			subs = append(subs, Substitution{1, codon[0], cand[0]})
		}
		if codon[0] == cand[0] && codon[2] == cand[2] {
			subs = append(subs, Substitution{2, codon[1], cand[1]})
		}
		if codon[0] == cand[0] && codon[1] == cand[1] {
			subs = append(subs, Substitution{3, codon[2], cand[2]})
		}
	}
	return subs
}
