package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/go-mpsgraph/graph"
	"github.com/gomlx/go-mpsgraph/runtime"
	"github.com/gomlx/go-mpsgraph/weights"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// smokeWeights writes the weights of the smoke graph, a size x size kernel
// and a bias, to path.
func smokeWeights(path string, size int) error {
	kernel := make([]float32, size*size)
	for i := range kernel {
		kernel[i] = float32(math.Sin(float64(i))) / float32(size)
	}
	bias := make([]float32, size)
	for i := range bias {
		bias[i] = 0.01 * float32(i%7)
	}
	w, err := weights.NewWriter(path)
	if err != nil {
		return err
	}
	if err := weights.AddFlat(w, "dense/kernel", kernel, int64(size), int64(size)); err != nil {
		_ = w.Close()
		return err
	}
	if err := weights.AddFlat(w, "dense/bias", bias, int64(size)); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// buildSmoke builds gelu(x @ kernel + bias) and its mean.
func buildSmoke(g *graph.Graph, f *weights.File, size int) (x, y, mean *graph.Tensor) {
	params := weights.Constants(g, f)
	g.Scope("smoke", func() {
		x = g.Placeholder("x", graph.Float32, graph.Shape{graph.Dynamic, int64(size)})
		y = g.Gelu(g.Add(g.MatMul(x, params["dense/kernel"]), params["dense/bias"]))
		mean = g.Mean(y, 0, 1)
	})
	return
}

// encodedGPUTime runs exec once through an explicit command buffer and
// returns the GPU time Metal measured for it.
func encodedGPUTime(queue *runtime.CommandQueue, exec *graph.Executable, input *runtime.TensorData) (time.Duration, error) {
	cb, err := queue.NewCommandBuffer()
	if err != nil {
		return 0, err
	}
	defer cb.Close()
	out, err := exec.Encode(cb, []*runtime.TensorData{input}, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		for _, td := range out {
			td.Close()
		}
	}()
	if err := cb.Commit(); err != nil {
		return 0, err
	}
	if err := cb.WaitUntilCompleted(); err != nil {
		return 0, err
	}
	return cb.GPUTime()
}

func smoke(args []string) error {
	flags := flag.NewFlagSet("smoke", flag.ExitOnError)
	size := flags.Int("size", 256, "Size of the square matrices.")
	batch := flags.Int("batch", 32, "Number of rows fed to the graph.")
	iterations := flags.Int("iterations", 10, "Number of runs of the compiled executable.")
	saveDir := flags.String("save", "", "Directory where to keep the weights file and the serialized executable.")
	must.M(flags.Parse(args))

	dir := *saveDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "mpsgraph-smoke-")
		if err != nil {
			return errors.Wrap(err, "temporary directory")
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}
	weightsPath := filepath.Join(dir, "smoke"+weights.Ext)
	if err := smokeWeights(weightsPath, *size); err != nil {
		return err
	}
	f, err := weights.Read(weightsPath)
	if err != nil {
		return err
	}

	dev, err := runtime.DefaultDevice()
	if err != nil {
		return err
	}
	g, err := graph.New()
	if err != nil {
		return err
	}
	defer g.Close()
	x, y, mean := buildSmoke(g, f, *size)
	if err := g.Err(); err != nil {
		return err
	}

	input := make([]float32, *batch**size)
	for i := range input {
		input[i] = float32(i%13) / 13
	}
	xData, err := runtime.FromFlat(dev, input, int64(*batch), int64(*size))
	if err != nil {
		return err
	}
	defer xData.Close()

	table := newTable(false, lipgloss.Right, lipgloss.Left)
	table.Row("device", dev.Name())
	table.Row("weights", fmt.Sprintf("%s (%s)", weightsPath, humanize.IBytes(f.TotalBytes())))

	start := time.Now()
	results, err := g.RunOnDevice(dev, map[*graph.Tensor]*runtime.TensorData{x: xData}, []*graph.Tensor{mean})
	if err != nil {
		return err
	}
	meanValue, err := runtime.ToFlat[float32](results[mean])
	results.Close()
	if err != nil {
		return err
	}
	table.Row("graph run", time.Since(start).String())
	table.Row("mean", fmt.Sprint(meanValue[0]))

	inputType, err := graph.NewShapedType(graph.Shape{int64(*batch), int64(*size)}, graph.Float32)
	if err != nil {
		return err
	}
	defer inputType.Close()
	start = time.Now()
	exec, err := g.Compile(dev, map[*graph.Tensor]*graph.ShapedType{x: inputType}, []*graph.Tensor{y},
		&graph.CompilationDescriptor{OptimizationLevel: graph.OptimizationLevel1, WaitForCompilationCompletion: true})
	if err != nil {
		return err
	}
	defer exec.Close()
	table.Row("compile", time.Since(start).String())

	queue, err := dev.NewCommandQueue()
	if err != nil {
		return err
	}
	defer queue.Close()
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		out, err := exec.Run(queue, []*runtime.TensorData{xData}, nil)
		if err != nil {
			return errors.WithMessagef(err, "iteration %d", i)
		}
		for _, td := range out {
			td.Close()
		}
	}
	if *iterations > 0 {
		table.Row("executable run", (time.Since(start) / time.Duration(*iterations)).String())
	}
	gpuTime, err := encodedGPUTime(queue, exec, xData)
	if err != nil {
		return err
	}
	table.Row("executable GPU time", gpuTime.String())

	if *saveDir != "" {
		path, err := exec.SerializeToDir(dir, nil)
		if err != nil {
			return err
		}
		table.Row("package", path)
	}
	klog.V(1).Infof("smoke: done in %s", dir)
	fmt.Println(titleStyle.Render("Smoke test"))
	fmt.Println(table.Render())
	return nil
}
