package cmd

import (
	"fmt"
	"strings"

	"github.com/jurhoades/PoSub/internal/codon"
	"github.com/spf13/cobra"
)

// codonsCmd is for listing the codons of the genetic code table. Useful for
// if the user doesn't know which codons encode an amino acid
var codonsCmd = &cobra.Command{
	Use:   "codons [amino acid]",
	Short: "List the synonymous codons for an amino acid",
	Long: `List the codons that encode [amino acid] in the standard genetic code.

'posub codons' without any arguments lists the full table, one amino acid per line.`,
	Example:                    "  posub codons L",
	Args:                       validateCodonsArgs,
	Run:                        runCodons,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"table"},
}

func validateCodonsArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return err
	}
	if len(args) == 1 {
		if _, err := codon.ParseAminoAcid(args[0]); err != nil {
			return err
		}
	}
	return nil
}

func runCodons(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		aa, _ := codon.ParseAminoAcid(args[0])
		cs, _ := codon.Codons(aa)
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(cs, " "))
		return
	}

	for _, aa := range codon.AminoAcids() {
		cs, _ := codon.Codons(aa)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", aa, strings.Join(cs, " "))
	}
}

func init() {
	RootCmd.AddCommand(codonsCmd)
}
