package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pyrite/internal/metadata"
	"pyrite/internal/qualifier"
	"pyrite/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты сканирования по ключу файла на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores cached scan facts for fast re-runs. The payload is
// keyed by file path and revalidated against ContentHash, so a stale entry
// can never shadow an edited file.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	// Handle
	Path string
	Stub bool

	// Derived qualifier segments
	Qualifier []string

	// Scan facts
	Autogenerated   bool
	Debug           bool
	LocalModeKind   uint8
	LocalModeCodes  []int
	ModeKind        uint8
	ModeCodes       []int
	Ignores         []DiskIgnore
	LineCount       int
	LanguageVersion int

	// Hash of the file content the facts were scanned from
	ContentHash source.Digest
}

// DiskIgnore is one suppression directive in cache form.
type DiskIgnore struct {
	Kind       uint8
	Codes      []int
	TargetLine int
	Line       uint32
	StartCol   uint32
	StopCol    uint32
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key source.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "scan".
	return filepath.Join(c.dir, "scan", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key source.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key source.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим в фоне
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// Dir returns the cache root directory.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// reportToDiskPayload converts a scanned FileReport to DiskPayload for caching.
func reportToDiskPayload(report *FileReport) *DiskPayload {
	if report == nil {
		return nil
	}

	payload := &DiskPayload{
		Schema:          diskCacheSchemaVersion,
		Path:            report.Handle.Path,
		Stub:            report.Handle.Stub,
		Qualifier:       report.Qualifier,
		Autogenerated:   report.Metadata.Autogenerated,
		Debug:           report.Metadata.Debug,
		LocalModeKind:   uint8(report.Metadata.LocalMode.Kind),
		LocalModeCodes:  report.Metadata.LocalMode.Codes,
		ModeKind:        uint8(report.Metadata.Mode.Kind),
		ModeCodes:       report.Metadata.Mode.Codes,
		LineCount:       report.Metadata.LineCount,
		LanguageVersion: report.Metadata.LanguageVersion,
		ContentHash:     report.Digest,
	}

	payload.Ignores = make([]DiskIgnore, len(report.Metadata.Ignores))
	for i, ig := range report.Metadata.Ignores {
		payload.Ignores[i] = DiskIgnore{
			Kind:       uint8(ig.Kind),
			Codes:      ig.Codes,
			TargetLine: ig.TargetLine,
			Line:       ig.Span.Start.Line,
			StartCol:   ig.Span.Start.Col,
			StopCol:    ig.Span.Stop.Col,
		}
	}

	return payload
}

// diskPayloadToReport converts DiskPayload back to a FileReport. Returns
// false when the schema does not match.
func diskPayloadToReport(payload *DiskPayload, report *FileReport) bool {
	if payload == nil || payload.Schema != diskCacheSchemaVersion {
		return false
	}

	report.Handle = source.Handle{Path: payload.Path, Stub: payload.Stub}
	report.Qualifier = qualifier.Qualifier(payload.Qualifier)
	report.Metadata = metadata.Metadata{
		Autogenerated:   payload.Autogenerated,
		Debug:           payload.Debug,
		LocalMode:       metadata.Mode{Kind: metadata.ModeKind(payload.LocalModeKind), Codes: payload.LocalModeCodes},
		Mode:            metadata.Mode{Kind: metadata.ModeKind(payload.ModeKind), Codes: payload.ModeCodes},
		LineCount:       payload.LineCount,
		LanguageVersion: payload.LanguageVersion,
	}
	report.Digest = payload.ContentHash

	report.Metadata.Ignores = make([]metadata.IgnoreDirective, len(payload.Ignores))
	for i, ig := range payload.Ignores {
		report.Metadata.Ignores[i] = metadata.IgnoreDirective{
			Kind:       metadata.IgnoreKind(ig.Kind),
			Codes:      ig.Codes,
			TargetLine: ig.TargetLine,
			Span:       source.LineSpan(payload.Path, ig.Line, ig.StartCol, ig.StopCol),
		}
	}

	return true
}
