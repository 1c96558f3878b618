package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pyrite/internal/metadata"
	"pyrite/internal/pipeline"
	"pyrite/internal/qualifier"
	"pyrite/internal/source"
)

// FileReport содержит результат сканирования одного файла
type FileReport struct {
	Path      string              // Путь, как его вернул обход
	Handle    source.Handle       // Handle с путём относительно корня скана
	Qualifier qualifier.Qualifier // Модульное имя файла
	Metadata  metadata.Metadata   // Результат сканирования директив
	Digest    source.Digest       // Хеш содержимого
	Cached    bool                // Факты восстановлены из дискового кеша
	Err       error               // Ошибка I/O или деривации
}

// ScanOptions configures ScanDir.
type ScanOptions struct {
	// Config supplies the project-wide mode flags.
	Config metadata.Config
	// Jobs caps worker goroutines; zero or less means GOMAXPROCS.
	Jobs int
	// Cache, when non-nil, short-circuits unchanged files.
	Cache *DiskCache
	// Progress, when non-nil, receives per-file events.
	Progress pipeline.ProgressSink
}

// ListPythonFiles возвращает отсортированный список всех *.py и *.pyi
// файлов в директории
func ListPythonFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && (strings.HasSuffix(path, ".py") || strings.HasSuffix(path, ".pyi")) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ScanDir сканирует все Python-файлы в директории параллельно.
//
// Per-file failures land in FileReport.Err so one unreadable file does not
// abort the run; only context cancellation or an unwalkable root returns an
// error.
func ScanDir(ctx context.Context, dir string, opts ScanOptions) ([]FileReport, error) {
	listStart := time.Now()
	emit(opts.Progress, pipeline.Event{Stage: pipeline.StageList, Status: pipeline.StatusWorking})

	files, err := ListPythonFiles(dir)
	if err != nil {
		emit(opts.Progress, pipeline.Event{Stage: pipeline.StageList, Status: pipeline.StatusError, Err: err, Elapsed: time.Since(listStart)})
		return nil, err
	}
	emit(opts.Progress, pipeline.Event{Stage: pipeline.StageList, Status: pipeline.StatusDone, Elapsed: time.Since(listStart)})

	if len(files) == 0 {
		return nil, nil
	}

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileReport, len(files))

	// Параллельное сканирование
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				started := time.Now()
				emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageScan, Status: pipeline.StatusWorking})

				results[i] = scanOne(dir, path, opts)

				evt := pipeline.Event{
					File:    path,
					Stage:   pipeline.StageScan,
					Status:  pipeline.StatusDone,
					Elapsed: time.Since(started),
				}
				if results[i].Err != nil {
					evt.Status = pipeline.StatusError
					evt.Err = results[i].Err
				}
				emit(opts.Progress, evt)

				return nil
			}
		}(i, path))
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

// ScanFile scans one file on its own. The qualifier is derived from the
// base name, as if the file's directory were the scan root.
func ScanFile(path string, cfg metadata.Config) FileReport {
	return scanOne(filepath.Dir(path), path, ScanOptions{Config: cfg})
}

func scanOne(root, path string, opts ScanOptions) FileReport {
	report := FileReport{Path: path}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	report.Handle = source.NewHandle(rel)

	content, err := os.ReadFile(path)
	if err != nil {
		report.Err = fmt.Errorf("failed to load file: %w", err)
		return report
	}
	report.Digest = source.HashContent(content)

	key := source.HashString(report.Handle.Path)
	if opts.Cache != nil {
		var payload DiskPayload
		ok, err := opts.Cache.Get(key, &payload)
		if err == nil && ok && payload.ContentHash == report.Digest && diskPayloadToReport(&payload, &report) {
			// Кеш хранит решение старого конфига; локальный кандидат
			// позволяет перерешать под текущий.
			report.Metadata.Mode = metadata.Resolve(opts.Config, report.Metadata.LocalMode)
			report.Cached = true
			return report
		}
	}

	q, err := qualifier.FromHandle(report.Handle)
	if err != nil {
		report.Err = err
		return report
	}
	report.Qualifier = q

	lines := source.SplitLines(content)
	report.Metadata = metadata.Parse(opts.Config, report.Handle.Path, lines)

	if opts.Cache != nil {
		// Запись в кеш — best effort.
		_ = opts.Cache.Put(key, reportToDiskPayload(&report))
	}

	return report
}

func emit(sink pipeline.ProgressSink, evt pipeline.Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}
