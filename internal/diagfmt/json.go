package diagfmt

import (
	"encoding/json"
	"io"

	"pyrite/internal/diag"
	"pyrite/internal/driver"
	"pyrite/internal/observ"
	"pyrite/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     uint16       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// IgnoreJSON описывает одну директиву подавления.
type IgnoreJSON struct {
	Kind       string `json:"kind"`
	Codes      []int  `json:"codes,omitempty"`
	TargetLine int    `json:"target_line"`
	Line       uint32 `json:"line"`
}

// ReportJSON описывает результат сканирования одного файла.
type ReportJSON struct {
	Path            string       `json:"path"`
	Qualifier       string       `json:"qualifier,omitempty"`
	Stub            bool         `json:"stub,omitempty"`
	Mode            string       `json:"mode,omitempty"`
	LocalMode       string       `json:"local_mode,omitempty"`
	Autogenerated   bool         `json:"autogenerated,omitempty"`
	Debug           bool         `json:"debug,omitempty"`
	LanguageVersion int          `json:"language_version,omitempty"`
	LineCount       int          `json:"line_count,omitempty"`
	Ignores         []IgnoreJSON `json:"ignores,omitempty"`
	ContentHash     string       `json:"content_hash,omitempty"`
	Cached          bool         `json:"cached,omitempty"`
	Error           string       `json:"error,omitempty"`
}

// ReportsOutput представляет корневую структуру JSON вывода сканирования.
type ReportsOutput struct {
	Reports []ReportJSON   `json:"reports"`
	Count   int            `json:"count"`
	Cached  int            `json:"cached"`
	Errors  int            `json:"errors"`
	Timings *observ.Report `json:"timings,omitempty"`
}

func makeLocation(span source.Span) LocationJSON {
	return LocationJSON{
		File:      span.Path,
		StartLine: span.Start.Line,
		StartCol:  span.Start.Col,
		EndLine:   span.Stop.Line,
		EndCol:    span.Stop.Col,
	}
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := 0; i < maxItems; i++ {
		d := items[i]

		diagJSON := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Location: makeLocation(d.Primary),
		}
		if opts.IncludeNotes && len(d.Notes) > 0 {
			diagJSON.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				diagJSON.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span),
				}
			}
		}

		diagnostics = append(diagnostics, diagJSON)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(bag, opts)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// BuildReportsOutput формирует структуру JSON-вывода сканирования.
func BuildReportsOutput(reports []driver.FileReport) ReportsOutput {
	out := ReportsOutput{
		Reports: make([]ReportJSON, 0, len(reports)),
		Count:   len(reports),
	}
	for _, r := range reports {
		rj := ReportJSON{
			Path:   r.Handle.Path,
			Stub:   r.Handle.Stub,
			Cached: r.Cached,
		}
		if r.Err != nil {
			rj.Path = r.Path
			rj.Error = r.Err.Error()
			out.Errors++
			out.Reports = append(out.Reports, rj)
			continue
		}
		if r.Cached {
			out.Cached++
		}
		rj.Qualifier = r.Qualifier.String()
		rj.Mode = r.Metadata.Mode.String()
		if !r.Metadata.LocalMode.Equal(r.Metadata.Mode) {
			rj.LocalMode = r.Metadata.LocalMode.String()
		}
		rj.Autogenerated = r.Metadata.Autogenerated
		rj.Debug = r.Metadata.Debug
		rj.LanguageVersion = r.Metadata.LanguageVersion
		rj.LineCount = r.Metadata.LineCount
		rj.ContentHash = r.Digest.String()
		if len(r.Metadata.Ignores) > 0 {
			rj.Ignores = make([]IgnoreJSON, len(r.Metadata.Ignores))
			for i, ig := range r.Metadata.Ignores {
				rj.Ignores[i] = IgnoreJSON{
					Kind:       ig.Kind.String(),
					Codes:      ig.Codes,
					TargetLine: ig.TargetLine,
					Line:       ig.Span.Start.Line,
				}
			}
		}
		out.Reports = append(out.Reports, rj)
	}
	return out
}

// ReportsJSON форматирует результаты сканирования в JSON формат.
// timings опционален и попадает в вывод как есть.
func ReportsJSON(w io.Writer, reports []driver.FileReport, timings *observ.Report) error {
	output := BuildReportsOutput(reports)
	output.Timings = timings

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
