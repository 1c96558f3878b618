package main

import (
	"strings"
	"testing"
	"time"

	"pyrite/internal/pipeline"
)

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		input string
		want  uiMode
		ok    bool
	}{
		{"", uiModeAuto, true},
		{"auto", uiModeAuto, true},
		{"on", uiModeOn, true},
		{"OFF", uiModeOff, true},
		{" on ", uiModeOn, true},
		{"yes", "", false},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.input)
		if tc.ok && err != nil {
			t.Fatalf("readUIMode(%q) error: %v", tc.input, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("readUIMode(%q) accepted garbage", tc.input)
		}
		if got != tc.want {
			t.Fatalf("readUIMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTimingSink(t *testing.T) {
	sink := newTimingSink()
	sink.OnEvent(pipeline.Event{Stage: pipeline.StageScan, Status: pipeline.StatusWorking})
	time.Sleep(2 * time.Millisecond)
	sink.OnEvent(pipeline.Event{Stage: pipeline.StageScan, Status: pipeline.StatusDone})

	timings := sink.Timings()
	if !timings.Has(pipeline.StageScan) {
		t.Fatal("scan stage not recorded")
	}
	if timings.Duration(pipeline.StageScan) <= 0 {
		t.Fatalf("scan duration = %v, want > 0", timings.Duration(pipeline.StageScan))
	}
	if timings.Has(pipeline.StageHash) {
		t.Fatal("hash stage recorded without events")
	}
}

func TestPrintStageTimings(t *testing.T) {
	var timings pipeline.Timings
	timings.Set(pipeline.StageList, 1500*time.Microsecond)
	timings.Set(pipeline.StageScan, 12*time.Millisecond)

	var sb strings.Builder
	printStageTimings(&sb, timings)
	got := sb.String()

	if !strings.Contains(got, "listed 1.5 ms") || !strings.Contains(got, "scanned 12.0 ms") {
		t.Fatalf("unexpected timing output:\n%s", got)
	}
	if strings.Contains(got, "reported") {
		t.Fatalf("report stage printed without data:\n%s", got)
	}
}

func TestRenderVersionPretty(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123"}

	var sb strings.Builder
	renderVersionPretty(&sb, info, versionOptions{showHash: true})
	got := sb.String()

	if !strings.Contains(got, "pyrite 1.2.3") {
		t.Fatalf("missing version line:\n%s", got)
	}
	if !strings.Contains(got, "commit: abc123") {
		t.Fatalf("missing commit line:\n%s", got)
	}

	sb.Reset()
	renderVersionPretty(&sb, info, versionOptions{})
	if !strings.Contains(sb.String(), "build trivia") {
		t.Fatalf("missing hint line:\n%s", sb.String())
	}
}
