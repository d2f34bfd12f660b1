package weights

import (
	"sort"

	"github.com/gomlx/go-mpsgraph/graph"
	"github.com/gomlx/go-mpsgraph/runtime"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Constants adds every record of f to g as a constant, keyed by record
// name. Failures are recorded on the graph, see Graph.Err.
func Constants(g *graph.Graph, f *File) map[string]*graph.Tensor {
	out := make(map[string]*graph.Tensor, len(f.Records))
	for _, r := range f.Records {
		out[r.Name] = g.Constant(r.Data, r.Shape, r.DataType)
	}
	return out
}

// Variables adds every record of f to g as a variable named after the
// record, keyed by record name.
func Variables(g *graph.Graph, f *File) map[string]*graph.Tensor {
	out := make(map[string]*graph.Tensor, len(f.Records))
	for _, r := range f.Records {
		out[r.Name] = g.Variable(r.Name, r.Data, r.Shape, r.DataType)
	}
	return out
}

// TensorData uploads the record to dev, e.g. to feed a placeholder.
func (r *Record) TensorData(dev *runtime.Device) (*runtime.TensorData, error) {
	return runtime.NewTensorData(dev, r.Data, r.Shape, r.DataType)
}

// Save reads back values, typically the results of a run, and writes them
// to a new weights file at path. It returns the ID of the file.
func Save(path string, values map[string]*runtime.TensorData) (uuid.UUID, error) {
	w, err := NewWriter(path)
	if err != nil {
		return uuid.Nil, err
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		td := values[name]
		b, err := td.Bytes()
		if err == nil {
			err = w.Add(name, td.DataType(), td.Shape(), b)
		}
		if err != nil {
			_ = w.Close()
			return uuid.Nil, errors.WithMessagef(err, "saving %q", name)
		}
	}
	return w.ID(), w.Close()
}
