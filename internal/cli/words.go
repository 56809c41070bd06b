// Single-shot conversion commands.
package cli

import (
	"fmt"

	"github.com/az-ai-labs/numwords/numwords"

	"github.com/spf13/cobra"
)

func (a *app) wordsCmd() *cobra.Command {
	var ordinal bool

	cmd := &cobra.Command{
		Use:   "words <number>...",
		Short: "Spell numbers as English words",
		Long: `Words prints the English words for each argument, one per line.

Example:
  numwords words 7 1234
  numwords words --ordinal 21
  numwords words -- -5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convertEach(cmd, args, func(s string) (string, error) {
				return numwords.ToWords(s, ordinal)
			})
		},
	}
	cmd.Flags().BoolVar(&ordinal, "ordinal", false, "print ordinal words (twenty-first)")
	return cmd
}

func (a *app) ordinalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ordinal <number>...",
		Short: "Print numbers as digit ordinals",
		Long: `Ordinal prints each argument in digits with its English ordinal
suffix, one per line: 1st, 22nd, 113th.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convertEach(cmd, args, numwords.ToOrdinal[string])
		},
	}
}

// convertEach writes fn(arg) for every argument and stops at the first error.
func convertEach(cmd *cobra.Command, args []string, fn func(string) (string, error)) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		s, err := fn(arg)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		fmt.Fprintln(out, s)
	}
	return nil
}
