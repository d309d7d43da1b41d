package batch

import (
	"log/slog"

	"github.com/gogpu/bounds"
	"github.com/gogpu/bounds/svgpath"
)

// Result is the outcome for one entry.
type Result struct {
	Name string
	Box  bounds.BoundingBox
	Err  error
}

// Run parses every entry and computes all boxes concurrently. Entries
// that fail to parse get their error in place; the rest are still
// computed. The error return is reserved for problems with the batch
// as a whole, such as a bad global transform.
func Run(f File) ([]Result, error) {
	var opts []bounds.Option
	if f.Transform != "" {
		m, err := svgpath.ParseTransform(f.Transform)
		if err != nil {
			return nil, err
		}
		opts = append(opts, bounds.WithMatrix(m))
	}
	if f.FirstSubpathOnly {
		opts = append(opts, bounds.WithFirstSubpathOnly())
	}

	results := make([]Result, len(f.Paths))
	objs := make([]bounds.Drawable, 0, len(f.Paths))
	index := make([]int, 0, len(f.Paths))
	for i, e := range f.Paths {
		results[i].Name = e.Name
		obj, err := object(e)
		if err != nil {
			results[i].Err = err
			continue
		}
		objs = append(objs, obj)
		index = append(index, i)
	}

	for j, r := range bounds.ComputeAllObjects(objs, f.Workers, opts...) {
		results[index[j]].Box = r.Box
		results[index[j]].Err = r.Err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	bounds.Logger().Info("batch: done", slog.Int("paths", len(results)), slog.Int("failed", failed))
	return results, nil
}

func object(e Entry) (bounds.PathObject, error) {
	segs, err := svgpath.ParsePath(e.D)
	if err != nil {
		return bounds.PathObject{}, err
	}
	obj := bounds.PathObject{Segments: segs}
	if e.Transform != "" {
		m, err := svgpath.ParseTransform(e.Transform)
		if err != nil {
			return bounds.PathObject{}, err
		}
		obj.Transform = &m
	}
	return obj, nil
}
