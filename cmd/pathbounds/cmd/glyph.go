package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/bounds/glyph"
)

func newGlyphCmd(s *settings) *cobra.Command {
	var (
		fontFile string
		size     float64
		engine   string
		line     bool
	)

	c := &cobra.Command{
		Use:   "glyph <text>",
		Short: "Print the outline bounding box of each glyph in text",
		Long: `Print the exact outline bounding box of each glyph in text. The Go
Regular font is used unless --font names a TrueType or OpenType file.

The sfnt engine reports pixels with y growing downward; the gotext
engine reports y growing upward from the baseline.

Examples:
  pathbounds glyph --size 32 "Hg"
  pathbounds glyph --engine gotext --line "Hello"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := s.options()
			if err != nil {
				return err
			}
			data := goregular.TTF
			if fontFile != "" {
				if data, err = os.ReadFile(fontFile); err != nil {
					return err
				}
			}

			var recs []record
			switch engine {
			case "sfnt":
				if line {
					return fmt.Errorf("--line needs --engine gotext")
				}
				f, err := sfnt.Parse(data)
				if err != nil {
					return fmt.Errorf("parse font: %w", err)
				}
				ppem := fixed.Int26_6(size * 64)
				for _, r := range args[0] {
					box, err := glyph.RuneBounds(f, r, ppem, opts...)
					recs = append(recs, newRecord(string(r), box, err))
				}
			case "gotext":
				face, err := font.ParseTTF(bytes.NewReader(data))
				if err != nil {
					return fmt.Errorf("parse font: %w", err)
				}
				if line {
					box, err := glyph.StringBounds(face, args[0], size, opts...)
					recs = append(recs, newRecord(args[0], box, err))
					break
				}
				for _, r := range args[0] {
					box, err := glyph.GoTextBounds(face, r, size, opts...)
					recs = append(recs, newRecord(string(r), box, err))
				}
			default:
				return fmt.Errorf("--engine: unknown engine %q", engine)
			}
			return write(cmd.OutOrStdout(), s.format, recs)
		},
	}
	c.Flags().StringVar(&fontFile, "font", "", "font file (default Go Regular)")
	c.Flags().Float64Var(&size, "size", 16, "font size in pixels per em")
	c.Flags().StringVar(&engine, "engine", "sfnt", "outline loader: sfnt or gotext")
	c.Flags().BoolVar(&line, "line", false, "bound the whole text as one line (gotext only)")
	return c
}
