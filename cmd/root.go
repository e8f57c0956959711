// Package cmd is for command line interactions with the posub application
package cmd

import (
	"fmt"
	"log"

	"github.com/jurhoades/PoSub/config"
	"github.com/jurhoades/PoSub/internal/codon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents posub called without any subcommands: determine
// whether [codon] can become a codon for [amino acid] through a single
// point mutation, and which nucleotide changes achieve it.
var RootCmd = &cobra.Command{
	Use:   "posub [codon] [amino acid]",
	Short: "Determine if an amino acid substitution is possible by a single point mutation",
	Long: `Determine if an amino acid substitution is possible by a single point mutation.

[codon] is the starting DNA codon (RNA codons are accepted and converted).
[amino acid] is the 1-letter symbol of the resulting amino acid (stop codon = X).

Each possible mutation is written to stdout as a tab-separated
(position, old nucleotide, new nucleotide) row`,
	Example: `  posub TTT L
  posub AAA K -p 3
  posub aug X -v`,
	Args:                       validateArgs,
	Run:                        runRoot,
	Version:                    "0.1.0",
	SuggestionsMinimumDistance: 2,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// validateArgs checks the codon and amino acid positionals and the
// position flag before Run. Cobra prints the error and usage to stderr.
func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	if _, err := codon.ParseCodon(args[0]); err != nil {
		return err
	}
	if _, err := codon.ParseAminoAcid(args[1]); err != nil {
		return err
	}

	pos, err := cmd.Flags().GetInt("position")
	if err != nil {
		return err
	}
	if pos < 0 || pos > 3 {
		return fmt.Errorf("position must be 1, 2 or 3 (got %d)", pos)
	}
	return nil
}

// runRoot finds the possible point mutations and writes them to stdout
func runRoot(cmd *cobra.Command, args []string) {
	conf := config.New()

	// already validated in validateArgs
	c, _ := codon.ParseCodon(args[0])
	aa, _ := codon.ParseAminoAcid(args[1])

	subs := codon.Find(c, aa, conf.Position)
	if conf.Verbose {
		codon.WriteReport(cmd.OutOrStdout(), c, aa, conf.Position, subs)
	} else {
		codon.WriteCompact(cmd.OutOrStdout(), subs)
	}
}

// set flags
func init() {
	RootCmd.Flags().IntP("position", "p", 0, "restrict the search to one codon position (1, 2 or 3)")
	RootCmd.Flags().BoolP("verbose", "v", false, "print a full report instead of tab-separated rows")

	// bind the parameters to viper
	viper.BindPFlag("position", RootCmd.Flags().Lookup("position"))
	viper.BindPFlag("verbose", RootCmd.Flags().Lookup("verbose"))
}
