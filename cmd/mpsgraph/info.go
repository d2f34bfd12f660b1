package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/go-mpsgraph/runtime"
)

func info() error {
	dev, err := runtime.DefaultDevice()
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render("Metal device"))
	table := newTable(false, lipgloss.Right, lipgloss.Left)
	table.Row("name", dev.Name())
	table.Row("working set", humanize.IBytes(dev.RecommendedMaxWorkingSetSize()))
	table.Row("unified memory", fmt.Sprint(dev.HasUnifiedMemory()))
	fmt.Println(table.Render())
	return nil
}
