// Package mpsgraph provides Go bindings to Apple's Metal Performance Shaders
// Graph (MPSGraph) framework.
//
// MPSGraph builds a symbolic tensor graph that runs on the Metal GPU of
// Apple Silicon and AMD Macs. The bindings go through a small Objective-C
// shim performing generic message sends, so every MPSGraph op is one Go
// method.
//
// # Architecture
//
// The module is organized into several packages:
//
//   - internal/bridge: Low-level cgo bindings, message sends and Objective-C blocks
//   - types: Data types and shapes shared by the other packages
//   - graph: Graph construction, every op family, control flow, execution and executables
//   - runtime: Metal device, command queues and buffers, shared events and tensor data
//   - weights: Binary weights file feeding constants and variables
//   - cmd/mpsgraph: Command line tool to inspect devices, weights and packages
//
// # Usage
//
//	import (
//	    "github.com/gomlx/go-mpsgraph/graph"
//	    "github.com/gomlx/go-mpsgraph/runtime"
//	)
//
//	g, err := graph.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
//	x := g.Placeholder("x", graph.Float32, graph.Shape{2, 3})
//	y := g.Softmax(x, 1)
//
//	dev, _ := runtime.DefaultDevice()
//	data, _ := runtime.FromFlat(dev, []float32{1, 2, 3, 4, 5, 6}, 2, 3)
//	results, err := g.Run(map[*graph.Tensor]*runtime.TensorData{x: data}, []*graph.Tensor{y})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	probabilities, _ := runtime.ToFlat[float32](results[y])
//
// # Requirements
//
//   - macOS 14.0+ (Sonoma or later)
//   - Xcode Command Line Tools
//   - Go 1.25+ with cgo enabled
//
// On other platforms the packages build, and every entry point returns
// graph.ErrUnavailable.
package mpsgraph
