package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/az-ai-labs/numwords/internal/batch"
	"github.com/az-ai-labs/numwords/internal/logger"

	"github.com/spf13/cobra"
)

func (a *app) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert one number per line from a file or stdin",
		Long: `Batch converts newline-separated numbers concurrently:
- Read numbers from the file, or stdin when no file or "-" is given
- Convert them on a pool of workers
- Write "input<TAB>words" lines in input order

Lines that cannot be converted are written as "input<TAB>error: message"
and make the command fail once every line has been written.

Example:
  numwords batch numbers.txt
  seq 1 100 | numwords batch --ordinal --workers 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runBatch,
	}
	cmd.Flags().Bool("ordinal", false, "write ordinal words")
	cmd.Flags().Int("workers", 0, "number of concurrent workers (default from config)")

	_ = a.v.BindPFlag("batch.ordinal", cmd.Flags().Lookup("ordinal"))
	_ = a.v.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	log := logger.Named(a.log, "batch")
	_, err := batch.Run(cmd.Context(), in, cmd.OutOrStdout(), batch.Options{
		Workers: a.cfg.Batch.Workers,
		Ordinal: a.cfg.Batch.Ordinal,
		Cache:   a.store(),
		Logger:  &log,
	})
	return err
}
