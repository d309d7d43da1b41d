// Command pathbounds prints tight bounding boxes of SVG paths and font
// glyphs.
package main

import "github.com/gogpu/bounds/cmd/pathbounds/cmd"

func main() {
	cmd.Execute()
}
