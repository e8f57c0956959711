// Package codon holds the standard genetic code and a search for the
// single point mutations that substitute one amino acid for another.
package codon

import "sort"

// Table maps an amino acid's 1-letter symbol to its synonymous DNA codons.
// "X" is the stop signal. Codon order within an entry is fixed and search
// results follow it.
var Table = map[string][]string{
	"A": {"GCA", "GCC", "GCG", "GCT"},
	"C": {"TGC", "TGT"},
	"D": {"GAC", "GAT"},
	"E": {"GAA", "GAG"},
	"F": {"TTC", "TTT"},
	"G": {"GGA", "GGC", "GGG", "GGT"},
	"H": {"CAC", "CAT"},
	"I": {"ATA", "ATC", "ATT"},
	"K": {"AAA", "AAG"},
	"L": {"TTA", "TTG", "CTA", "CTC", "CTG", "CTT"},
	"M": {"ATG"},
	"N": {"AAC", "AAT"},
	"P": {"CCA", "CCC", "CCG", "CCT"},
	"Q": {"CAA", "CAG"},
	"R": {"AGA", "AGG", "CGA", "CGC", "CGG", "CGT"},
	"S": {"AGC", "AGT", "TCA", "TCC", "TCG", "TCT"},
	"T": {"ACA", "ACC", "ACG", "ACT"},
	"V": {"GTA", "GTC", "GTG", "GTT"},
	"W": {"TGG"},
	"Y": {"TAC", "TAT"},
	"X": {"TAG", "TGA", "TAA"},
}

// Codons returns the synonymous codons for an amino acid symbol.
func Codons(aa string) ([]string, bool) {
	cs, ok := Table[aa]
	return cs, ok
}

// AminoAcids returns the table's amino acid symbols in alphabetical order,
// with the stop symbol "X" sorting among them.
func AminoAcids() []string {
	aas := make([]string, 0, len(Table))
	for aa := range Table {
		aas = append(aas, aa)
	}
	sort.Strings(aas)
	return aas
}
