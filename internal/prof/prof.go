// Package prof wires the Go runtime profilers behind CLI flags. Every Start
// has a matching Stop that is safe to call when nothing was started.
package prof

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

var (
	cpuOut   *os.File
	traceOut *os.File
)

// StartCPU begins CPU profiling into the file at path.
func StartCPU(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return err
	}
	cpuOut = f
	return nil
}

// StopCPU flushes and closes an active CPU profile.
func StopCPU() {
	pprof.StopCPUProfile()
	if cpuOut != nil {
		_ = cpuOut.Close()
		cpuOut = nil
	}
}

// WriteMem dumps a heap profile to path after forcing a collection, so the
// profile reflects live objects rather than garbage.
func WriteMem(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// StartTrace begins a runtime execution trace into the file at path.
func StartTrace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		return err
	}
	traceOut = f
	return nil
}

// StopTrace ends an active execution trace and closes its file.
func StopTrace() {
	trace.Stop()
	if traceOut != nil {
		_ = traceOut.Close()
		traceOut = nil
	}
}
