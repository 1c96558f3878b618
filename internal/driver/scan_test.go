package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"pyrite/internal/metadata"
	"pyrite/internal/pipeline"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

func TestScanDir(t *testing.T) {
	root := writeTree(t, map[string]string{
		"pkg/__init__.py": "",
		"pkg/mod.py":      "# pyre-strict\nx = 1  # pyre-fixme[7]\n",
		"top.py":          "#!/usr/bin/env python2\n# @" + "generated" + "\n",
		"notes.txt":       "not python",
	})

	reports, err := ScanDir(context.Background(), root, ScanOptions{})
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("got %d reports, want 3", len(reports))
	}

	wantQualifiers := []string{"pkg", "pkg.mod", "top"}
	for i, want := range wantQualifiers {
		if got := reports[i].Qualifier.String(); got != want {
			t.Errorf("reports[%d].Qualifier = %q, want %q", i, got, want)
		}
		if reports[i].Err != nil {
			t.Errorf("reports[%d].Err = %v", i, reports[i].Err)
		}
	}

	mod := reports[1]
	if mod.Metadata.Mode.Kind != metadata.ModeStrict {
		t.Errorf("pkg/mod.py mode = %v, want strict", mod.Metadata.Mode)
	}
	if len(mod.Metadata.Ignores) != 1 || mod.Metadata.Ignores[0].TargetLine != 2 {
		t.Errorf("pkg/mod.py ignores = %v", mod.Metadata.Ignores)
	}

	top := reports[2]
	if !top.Metadata.Autogenerated {
		t.Error("top.py not marked autogenerated")
	}
	if top.Metadata.LanguageVersion != 2 {
		t.Errorf("top.py language version = %d, want 2", top.Metadata.LanguageVersion)
	}
	if top.Digest.IsZero() {
		t.Error("top.py digest is zero")
	}
}

func TestScanDirAppliesConfig(t *testing.T) {
	root := writeTree(t, map[string]string{"mod.py": "x = 1\n"})

	reports, err := ScanDir(context.Background(), root, ScanOptions{
		Config: metadata.Config{Strict: true},
	})
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if reports[0].Metadata.Mode.Kind != metadata.ModeStrict {
		t.Fatalf("mode = %v, want strict from config", reports[0].Metadata.Mode)
	}
}

func TestScanDirEmpty(t *testing.T) {
	reports, err := ScanDir(context.Background(), t.TempDir(), ScanOptions{})
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if reports != nil {
		t.Fatalf("reports = %v, want nil", reports)
	}
}

func TestScanDirBrokenFile(t *testing.T) {
	root := writeTree(t, map[string]string{"ok.py": "x = 1\n"})
	if err := os.Symlink(filepath.Join(root, "missing.py"), filepath.Join(root, "gone.py")); err != nil {
		t.Skipf("symlink unsupported: %v", err)
	}

	reports, err := ScanDir(context.Background(), root, ScanOptions{})
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	if reports[0].Err == nil {
		t.Error("dangling symlink produced no error")
	}
	if reports[1].Err != nil {
		t.Errorf("healthy file failed: %v", reports[1].Err)
	}
}

func TestScanDirCancelled(t *testing.T) {
	root := writeTree(t, map[string]string{"mod.py": "x = 1\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ScanDir(ctx, root, ScanOptions{}); err == nil {
		t.Fatal("cancelled scan returned no error")
	}
}

type collectSink struct {
	mu     sync.Mutex
	events []pipeline.Event
}

func (s *collectSink) OnEvent(evt pipeline.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func TestScanDirProgress(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.py": "x = 1\n",
		"b.py": "y = 2\n",
	})
	sink := &collectSink{}

	if _, err := ScanDir(context.Background(), root, ScanOptions{Jobs: 1, Progress: sink}); err != nil {
		t.Fatalf("ScanDir: %v", err)
	}

	// list working/done plus working/done per file
	if len(sink.events) != 6 {
		t.Fatalf("got %d events, want 6: %v", len(sink.events), sink.events)
	}
	if sink.events[0].Stage != pipeline.StageList || sink.events[1].Status != pipeline.StatusDone {
		t.Fatalf("list events = %v %v", sink.events[0], sink.events[1])
	}
	perFile := map[string]int{}
	for _, evt := range sink.events[2:] {
		if evt.Stage != pipeline.StageScan {
			t.Errorf("unexpected stage %q", evt.Stage)
		}
		if evt.Status == pipeline.StatusDone {
			perFile[evt.File]++
		}
	}
	if len(perFile) != 2 {
		t.Fatalf("done events covered %d files, want 2", len(perFile))
	}
}

func TestScanFile(t *testing.T) {
	root := writeTree(t, map[string]string{"deep/nested/util.py": "# pyre-strict\n"})

	report := ScanFile(filepath.Join(root, "deep", "nested", "util.py"), metadata.Config{})
	if report.Err != nil {
		t.Fatalf("ScanFile: %v", report.Err)
	}
	if got := report.Qualifier.String(); got != "util" {
		t.Fatalf("Qualifier = %q, want %q", got, "util")
	}
	if report.Metadata.Mode.Kind != metadata.ModeStrict {
		t.Fatalf("mode = %v, want strict", report.Metadata.Mode)
	}
}
