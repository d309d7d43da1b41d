package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/bounds/svgpath"
)

func newPathCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "path [path-data...]",
		Short: "Print the bounding box of SVG path data",
		Long: `Print the bounding box of each SVG path data argument. With no arguments,
path data is read from standard input, one path per line.

Examples:
  pathbounds path "M0 0 Q2 2 4 0"
  pathbounds path "M1 0 A1 1 0 0 1 0 1" "M0 0 C0 4 4 4 4 0"
  cat paths.txt | pathbounds path --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := s.options()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if line := strings.TrimSpace(sc.Text()); line != "" {
						args = append(args, line)
					}
				}
				if err := sc.Err(); err != nil {
					return err
				}
			}
			if len(args) == 0 {
				return fmt.Errorf("no path data given")
			}

			recs := make([]record, len(args))
			for i, d := range args {
				box, err := svgpath.Bounds(d, opts...)
				recs[i] = newRecord(fmt.Sprintf("path%d", i+1), box, err)
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
}
