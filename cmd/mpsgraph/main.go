// mpsgraph is a small tool around the MPSGraph bindings:
//
//	mpsgraph info                     reports the Metal device
//	mpsgraph inspect <file>           lists a weights file or an MPSGraph package
//	mpsgraph smoke [-size N] [-save]  builds, compiles and runs a small graph
//
// klog flags (-v, -logtostderr, ...) are accepted before the command.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gomlx/go-mpsgraph/graph"
	"k8s.io/klog/v2"
)

const usage = `Usage: mpsgraph [klog flags] <command> [flags] [args]

Commands:
  info              report the default Metal device
  inspect <file>    list the tensors of a weights file (%s) or an MPSGraph package (%s)
  smoke             build, compile and run a small graph
`

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, ".mpsw", graph.PackageExt)
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "info":
		err = info()
	case "inspect":
		if len(rest) != 1 {
			klog.Errorf("inspect takes exactly one file, see 'mpsgraph -help'")
			os.Exit(2)
		}
		err = inspect(rest[0])
	case "smoke":
		err = smoke(rest)
	default:
		klog.Errorf("Unknown command %q, see 'mpsgraph -help'", cmd)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %+v", err)))
		os.Exit(1)
	}
}
