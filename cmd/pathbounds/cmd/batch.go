package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/bounds/internal/batch"
)

func newBatchCmd(s *settings) *cobra.Command {
	var workers int

	c := &cobra.Command{
		Use:   "batch <file>",
		Short: "Compute bounding boxes for every path in a YAML or TOML batch file",
		Long: `Compute bounding boxes for every path listed in a batch file. Paths are
computed concurrently; a failing path does not stop the others.

Examples:
  pathbounds batch shapes.yaml
  pathbounds batch --workers 8 --format json shapes.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := batch.Load(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				f.Workers = workers
			}
			if s.firstSubpath {
				f.FirstSubpathOnly = true
			}
			if s.transform != "" {
				// The command line transform applies after the file's own.
				if f.Transform != "" {
					f.Transform = s.transform + " " + f.Transform
				} else {
					f.Transform = s.transform
				}
			}

			results, err := batch.Run(f)
			if err != nil {
				return err
			}
			recs := make([]record, len(results))
			for i, r := range results {
				recs[i] = newRecord(r.Name, r.Box, r.Err)
			}
			if err := write(cmd.OutOrStdout(), s.format, recs); err != nil {
				return err
			}
			if n := failures(recs); n > 0 {
				return fmt.Errorf("%d of %d paths failed", n, len(recs))
			}
			return nil
		},
	}
	c.Flags().IntVarP(&workers, "workers", "w", 0, "number of worker goroutines (0 = GOMAXPROCS)")
	return c
}
