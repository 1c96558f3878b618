package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pyrite/internal/driver"
	"pyrite/internal/pipeline"
	"pyrite/internal/ui"
)

type scanOutcome struct {
	reports []driver.FileReport
	err     error
}

// multiSink размножает события по нескольким приёмникам.
type multiSink []pipeline.ProgressSink

func (s multiSink) OnEvent(evt pipeline.Event) {
	for _, sink := range s {
		if sink != nil {
			sink.OnEvent(evt)
		}
	}
}

func runScanWithUI(ctx context.Context, title string, files []string, dir string, opts driver.ScanOptions) ([]driver.FileReport, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan scanOutcome, 1)

	go func() {
		optsCopy := opts
		channelSink := pipeline.ChannelSink{Ch: events}
		if opts.Progress != nil {
			optsCopy.Progress = multiSink{channelSink, opts.Progress}
		} else {
			optsCopy.Progress = channelSink
		}
		reports, err := driver.ScanDir(ctx, dir, optsCopy)
		outcomeCh <- scanOutcome{reports: reports, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.reports, uiErr
	}
	return outcome.reports, outcome.err
}
