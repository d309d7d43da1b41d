package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/bounds"
	"github.com/gogpu/bounds/internal/log"
	"github.com/gogpu/bounds/svgpath"
)

// settings holds the global flags.
type settings struct {
	format       string
	transform    string
	firstSubpath bool
	log          log.Options
	closeLog     func() error
}

// options converts the global flags to bounds options.
func (s *settings) options() ([]bounds.Option, error) {
	var opts []bounds.Option
	if s.transform != "" {
		m, err := svgpath.ParseTransform(s.transform)
		if err != nil {
			return nil, fmt.Errorf("--transform: %w", err)
		}
		opts = append(opts, bounds.WithMatrix(m))
	}
	if s.firstSubpath {
		opts = append(opts, bounds.WithFirstSubpathOnly())
	}
	return opts, nil
}

// NewRootCmd builds the pathbounds command tree.
func NewRootCmd() *cobra.Command {
	s := &settings{log: log.Defaults()}

	root := &cobra.Command{
		Use:   "pathbounds",
		Short: "Tight bounding boxes for SVG paths and font glyphs",
		Long: `pathbounds computes exact axis-aligned bounding boxes of vector paths:
lines, quadratic and cubic Bezier curves and SVG elliptical arcs.

Examples:
  pathbounds path "M0 0 Q2 2 4 0"
  pathbounds path --transform "rotate(30)" --format json "M0 0 h10 a5 5 0 0 1 0 10 z"
  pathbounds batch shapes.yaml --workers 8
  pathbounds glyph --size 32 "Hello"`,
		Version:       bounds.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch s.format {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("--format: unknown format %q", s.format)
			}
			l, closeFn, err := log.New(cmd.ErrOrStderr(), s.log)
			if err != nil {
				return err
			}
			bounds.SetLogger(l)
			s.closeLog = closeFn
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			bounds.SetLogger(nil)
			if s.closeLog != nil {
				return s.closeLog()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&s.format, "format", "f", "text", "output format: text, json or yaml")
	pf.StringVarP(&s.transform, "transform", "t", "", "SVG transform list applied to every path")
	pf.BoolVar(&s.firstSubpath, "first-subpath", false, "stop at the first closepath")
	pf.StringVar(&s.log.Level, "log-level", s.log.Level, "log level: debug, info, warn or error")
	pf.StringVar(&s.log.Format, "log-format", s.log.Format, "log format: text or json")
	pf.StringVar(&s.log.File, "log-file", "", "also write JSON logs to this rotated file")

	root.AddCommand(newPathCmd(s), newBatchCmd(s), newGlyphCmd(s))
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
