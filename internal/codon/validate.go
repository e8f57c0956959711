package codon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCodon is for input that isn't a real codon after RNA-to-DNA
// normalization.
var ErrInvalidCodon = errors.New("codon must be a valid 3 letter string")

// ErrInvalidAminoAcid is for input that isn't a single amino acid letter.
// The ambiguity codes B, J, O, U and Z are rejected.
var ErrInvalidAminoAcid = errors.New("amino acid must be a valid 1 letter string")

// ParseCodon uppercases raw, converts RNA uracil to thymine, and checks
// that the result is a codon in the genetic code.
func ParseCodon(raw string) (string, error) {
	c := strings.ReplaceAll(strings.ToUpper(raw), "U", "T")
	if len(c) != 3 || !isAlpha(c) || !knownCodon(c) {
		return "", fmt.Errorf("%q: %w", raw, ErrInvalidCodon)
	}
	return c, nil
}

// ParseAminoAcid uppercases raw and checks that it's the 1-letter symbol
// of a standard amino acid or the stop symbol X.
func ParseAminoAcid(raw string) (string, error) {
	if len(raw) != 1 || !isAlpha(raw) {
		return "", fmt.Errorf("%q: %w", raw, ErrInvalidAminoAcid)
	}
	aa := strings.ToUpper(raw)
	if strings.Contains("BJOUZ", aa) {
		return "", fmt.Errorf("%q: %w", raw, ErrInvalidAminoAcid)
	}
	return aa, nil
}

// knownCodon checks s against the codon values of the table.
func knownCodon(s string) bool {
	for _, cs := range Table {
		for _, c := range cs {
			if c == s {
				return true
			}
		}
	}
	return false
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (b < 'A' || b > 'Z') && (b < 'a' || b > 'z') {
			return false
		}
	}
	return len(s) > 0
}
