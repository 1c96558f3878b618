package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"pyrite/internal/pipeline"
)

// timingSink накапливает длительности стадий из потока событий.
// Стадия длится от первого её события до последнего.
type timingSink struct {
	mu    sync.Mutex
	first map[pipeline.Stage]time.Time
	last  map[pipeline.Stage]time.Time
}

func newTimingSink() *timingSink {
	return &timingSink{
		first: make(map[pipeline.Stage]time.Time),
		last:  make(map[pipeline.Stage]time.Time),
	}
}

func (s *timingSink) OnEvent(evt pipeline.Event) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.first[evt.Stage]; !ok {
		s.first[evt.Stage] = now
	}
	s.last[evt.Stage] = now
}

// Timings возвращает снимок накопленных длительностей.
func (s *timingSink) Timings() pipeline.Timings {
	s.mu.Lock()
	defer s.mu.Unlock()
	var t pipeline.Timings
	for stage, started := range s.first {
		t.Set(stage, s.last[stage].Sub(started))
	}
	return t
}

func printStageTimings(out io.Writer, timings pipeline.Timings) {
	if out == nil {
		return
	}
	if timings.Has(pipeline.StageList) {
		fmt.Fprintf(out, "listed %.1f ms\n", toMillis(timings.Duration(pipeline.StageList)))
	}
	if timings.Has(pipeline.StageScan) {
		fmt.Fprintf(out, "scanned %.1f ms\n", toMillis(timings.Duration(pipeline.StageScan)))
	}
	if timings.Has(pipeline.StageReport) {
		fmt.Fprintf(out, "reported %.1f ms\n", toMillis(timings.Duration(pipeline.StageReport)))
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
