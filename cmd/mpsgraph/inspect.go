package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/go-mpsgraph/graph"
	"github.com/gomlx/go-mpsgraph/weights"
)

func inspect(path string) error {
	if strings.EqualFold(filepath.Ext(path), graph.PackageExt) {
		return inspectPackage(path)
	}
	return inspectWeights(path)
}

func inspectWeights(path string) error {
	f, err := weights.Read(path)
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render("Weights"))
	summary := newTable(false, lipgloss.Right, lipgloss.Left)
	summary.Row("file", path)
	summary.Row("id", f.ID.String())
	summary.Row("# tensors", humanize.Comma(int64(len(f.Records))))
	summary.Row("# bytes", humanize.IBytes(f.TotalBytes()))
	fmt.Println(summary.Render())

	table := newTable(true, lipgloss.Left, lipgloss.Left, lipgloss.Left, lipgloss.Right)
	table.Headers("Name", "Type", "Shape", "Bytes")
	for _, name := range f.Names() {
		r := f.Lookup(name)
		table.Row(r.Name, r.DataType.String(), r.Shape.String(), humanize.IBytes(uint64(len(r.Data))))
	}
	fmt.Println(table.Render())
	return nil
}

func inspectPackage(path string) error {
	exec, err := graph.LoadPackage(path, nil)
	if err != nil {
		return err
	}
	defer exec.Close()
	fmt.Println(titleStyle.Render("MPSGraph package"))
	table := newTable(true, lipgloss.Left)
	table.Headers("Role", "Name", "Type", "Shape")
	for _, t := range exec.FeedTensors() {
		table.Row("feed", t.Name(), t.DataType().String(), t.Shape().String())
	}
	for _, t := range exec.TargetTensors() {
		table.Row("target", t.Name(), t.DataType().String(), t.Shape().String())
	}
	fmt.Println(table.Render())
	return nil
}
