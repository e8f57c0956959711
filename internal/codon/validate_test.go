package codon

import (
	"errors"
	"testing"
)

func TestParseCodon(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"uppercase DNA", "TTT", "TTT", false},
		{"lowercase DNA", "gca", "GCA", false},
		{"RNA uracil converted", "UUU", "TTT", false},
		{"mixed case RNA", "aUg", "ATG", false},
		{"stop codon", "TGA", "TGA", false},
		{"not a codon", "XYZ", "", true},
		{"too short", "AT", "", true},
		{"too long", "ATGC", "", true},
		{"digit", "A1G", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCodon(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCodon(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidCodon) {
				t.Errorf("ParseCodon(%q) error = %v, want ErrInvalidCodon", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseCodon(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseAminoAcid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"uppercase", "L", "L", false},
		{"lowercase", "k", "K", false},
		{"stop symbol", "X", "X", false},
		{"ambiguity code B", "B", "", true},
		{"ambiguity code J", "J", "", true},
		{"ambiguity code O", "O", "", true},
		{"ambiguity code U", "U", "", true},
		{"ambiguity code Z", "z", "", true},
		{"two letters", "AA", "", true},
		{"digit", "1", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAminoAcid(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAminoAcid(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidAminoAcid) {
				t.Errorf("ParseAminoAcid(%q) error = %v, want ErrInvalidAminoAcid", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseAminoAcid(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// every letter that passes validation must have a table entry, so the
// finder's lookup is total over parsed amino acids
func TestParseAminoAcidCoversTable(t *testing.T) {
	for b := byte('A'); b <= 'Z'; b++ {
		aa, err := ParseAminoAcid(string(b))
		if err != nil {
			continue
		}
		if _, ok := Codons(aa); !ok {
			t.Errorf("ParseAminoAcid(%q) accepted a symbol with no codons", aa)
		}
	}
}
