package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/bounds"
)

// record is one line of output.
type record struct {
	Name   string  `json:"name" yaml:"name"`
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Top    float64 `json:"top" yaml:"top"`
	Error  string  `json:"error,omitempty" yaml:"error,omitempty"`
}

func newRecord(name string, box bounds.BoundingBox, err error) record {
	if err != nil {
		return record{Name: name, Error: err.Error()}
	}
	return record{Name: name, Left: box.Left, Right: box.Right, Bottom: box.Bottom, Top: box.Top}
}

// write prints records in the requested format.
func write(w io.Writer, format string, recs []record) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, r := range recs {
		var err error
		if r.Error != "" {
			_, err = fmt.Fprintf(w, "%s\terror: %s\n", r.Name, r.Error)
		} else {
			_, err = fmt.Fprintf(w, "%s\tleft=%g right=%g bottom=%g top=%g\n", r.Name, r.Left, r.Right, r.Bottom, r.Top)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// failures counts records holding an error.
func failures(recs []record) int {
	n := 0
	for _, r := range recs {
		if r.Error != "" {
			n++
		}
	}
	return n
}
