package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyrite/internal/prof"
)

// profileSpec carries the profiling destinations requested on the root
// command. Empty fields leave the corresponding profiler off.
type profileSpec struct {
	cpu   string
	mem   string
	trace string
}

func readProfileSpec(cmd *cobra.Command) (profileSpec, error) {
	root := cmd.Root()
	var spec profileSpec
	var err error

	if spec.cpu, err = root.PersistentFlags().GetString("cpu-profile"); err != nil {
		return spec, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if spec.mem, err = root.PersistentFlags().GetString("mem-profile"); err != nil {
		return spec, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if spec.trace, err = root.PersistentFlags().GetString("runtime-trace"); err != nil {
		return spec, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	return spec, nil
}

// setupProfiling enables the profilers requested via persistent flags and
// returns a cleanup that unwinds them in reverse start order. Calling the
// cleanup more than once is harmless.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	spec, err := readProfileSpec(cmd)
	if err != nil {
		return nil, err
	}

	var started []func()
	undo := func() {
		for i := len(started) - 1; i >= 0; i-- {
			started[i]()
		}
	}

	if spec.cpu != "" {
		if err := prof.StartCPU(spec.cpu); err != nil {
			return nil, fmt.Errorf("failed to start cpu profile: %w", err)
		}
		started = append(started, prof.StopCPU)
	}
	if spec.trace != "" {
		if err := prof.StartTrace(spec.trace); err != nil {
			undo()
			return nil, fmt.Errorf("failed to start trace: %w", err)
		}
		started = append(started, prof.StopTrace)
	}
	if spec.mem != "" {
		started = append(started, func() {
			if err := prof.WriteMem(spec.mem); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write heap profile: %v\n", err)
			}
		})
	}

	cleaned := false
	return func() {
		if cleaned {
			return
		}
		cleaned = true
		undo()
	}, nil
}
