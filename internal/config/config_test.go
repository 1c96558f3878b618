package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "pyrite.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[analysis]\nstrict = true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Analysis.Strict {
		t.Fatal("strict = true was not decoded")
	}
	if cfg.Analysis.Infer || cfg.Analysis.Declare {
		t.Fatal("unset flags decoded as true")
	}
}

func TestLoadEmptyManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("empty manifest decoded to %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[analysis]\nstric = true\n")

	if _, err := Load(path); err == nil {
		t.Fatal("misspelled key was accepted")
	}
}

func TestLoadRejectsBadToml(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[analysis\n")

	if _, err := Load(path); err == nil {
		t.Fatal("malformed TOML was accepted")
	}
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[analysis]\ndeclare = true\n")
	nested := filepath.Join(root, "src", "pkg")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	manifest, ok, err := LoadManifest(nested)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	if manifest.Root != root {
		t.Fatalf("Root = %q, want %q", manifest.Root, root)
	}
	if !manifest.Config.Analysis.Declare {
		t.Fatal("declare flag lost on the walk up")
	}
}

func TestLoadManifestMissing(t *testing.T) {
	dir := t.TempDir()

	manifest, ok, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if ok || manifest != nil {
		t.Fatalf("found a manifest in an empty tree: %+v", manifest)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	if !ok || got != root {
		t.Fatalf("FindProjectRoot = %q, %v; want %q, true", got, ok, root)
	}
}
