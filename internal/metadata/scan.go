package metadata

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"pyrite/internal/source"
)

// Config carries the global analysis flags that override file-local mode
// comments.
type Config struct {
	Infer   bool
	Strict  bool
	Declare bool
}

// Metadata captures everything the directive scan extracts from one file.
// It is immutable after Parse.
type Metadata struct {
	Autogenerated   bool
	Debug           bool
	LocalMode       Mode // file-local candidate, before global overrides
	Mode            Mode // effective mode, resolved against Config
	Ignores         []IgnoreDirective
	LineCount       int
	LanguageVersion int
}

// IsPlaceholderStub reports whether the file opted into placeholder-stub
// handling. The effective mode never carries the placeholder kind (see
// Resolve), so consumers ask the local candidate.
func (m Metadata) IsPlaceholderStub() bool {
	return m.LocalMode.Kind == ModePlaceholderStub
}

// The generation markers are assembled from two literals so this file never
// matches itself.
var generatedMarkers = []string{
	"@" + "generated",
	"@" + "auto-generated",
}

var (
	localModeWithCodes = regexp.MustCompile(`^#\s*pyre-(?:ignore-all-errors|do-not-check)\[(\d+(?:,\s*\d+)*)\]\s*$`)
	localModeBare      = regexp.MustCompile(`^#\s*pyre-(?:ignore-all-errors|do-not-check)\s*$`)
)

// Parse scans the split lines of a file into Metadata. Scanning never
// fails: malformed directives degrade instead of erroring.
//
// Matching happens on an ASCII-lowered copy of each line (and its
// whitespace-stripped form for comment-shaped rules); reported columns
// always index the original text. Mode and language version are decided by
// the first matching line; generation and debug markers accumulate;
// suppression directives are collected from every line.
func Parse(cfg Config, path string, lines []string) Metadata {
	md := Metadata{
		LineCount:       len(lines),
		LanguageVersion: 3,
	}
	localSet := false
	versionSet := false

	for i, line := range lines {
		lowered := asciiLower(line)
		stripped := strings.TrimSpace(lowered)
		isComment := strings.HasPrefix(stripped, "#")

		if !md.Autogenerated && containsGeneratedMarker(lowered) {
			md.Autogenerated = true
		}
		if isComment && strings.Contains(stripped, "pyre-debug") {
			md.Debug = true
		}
		if !versionSet && strings.HasPrefix(stripped, "#!") && strings.Contains(stripped, "python2") {
			md.LanguageVersion = 2
			versionSet = true
		}
		if !localSet {
			if mode, ok := localModeOf(stripped, isComment); ok {
				md.LocalMode = mode
				localSet = true
			}
		}
		if dir, ok := scanSuppression(path, i, line, lowered, isComment); ok {
			md.Ignores = append(md.Ignores, dir)
		}
	}

	md.Mode = Resolve(cfg, md.LocalMode)
	return md
}

func containsGeneratedMarker(lowered string) bool {
	for _, marker := range generatedMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// localModeOf applies the per-line mode rules in priority order.
func localModeOf(stripped string, isComment bool) (Mode, bool) {
	if m := localModeWithCodes.FindStringSubmatch(stripped); m != nil {
		return Mode{Kind: ModeDefaultButDontCheck, Codes: parseCodeList(m[1])}, true
	}
	if localModeBare.MatchString(stripped) {
		return Mode{Kind: ModeDeclare}, true
	}
	if !isComment {
		return Mode{}, false
	}
	if strings.Contains(stripped, "pyre-strict") {
		return Mode{Kind: ModeStrict}, true
	}
	if strings.Contains(stripped, "pyre-placeholder-stub") {
		return Mode{Kind: ModePlaceholderStub}, true
	}
	return Mode{}, false
}

// parseCodeList parses the regexp-validated contents of an
// ignore-all-errors bracket: comma-separated integers, order kept, no
// de-duplication.
func parseCodeList(inner string) []int {
	fields := strings.Split(inner, ",")
	codes := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil
		}
		codes = append(codes, n)
	}
	return codes
}

// suppressionTokens are tried in priority order: at most one directive is
// emitted per line, for the first kind that matches.
var suppressionTokens = []struct {
	kind  IgnoreKind
	token string
}{
	{PyreIgnore, "pyre-ignore"},
	{PyreFixme, "pyre-fixme"},
	{TypeIgnore, "type: ignore"},
}

func scanSuppression(path string, index int, original, lowered string, isComment bool) (IgnoreDirective, bool) {
	chunks := outsideQuotes(lowered)
	for _, cand := range suppressionTokens {
		for _, chunk := range chunks {
			pos := findDirectiveToken(chunk, cand.token, cand.kind)
			if pos < 0 {
				continue
			}

			target := index + 1
			if isComment {
				// A standalone comment suppresses the line below it.
				target = index + 2
			}

			// The column is searched on the unstripped line so it indexes
			// the original text.
			col := findDirectiveToken(lowered, cand.token, cand.kind)
			return IgnoreDirective{
				Kind:       cand.kind,
				Codes:      parseBracketCodes(chunk[pos+len(cand.token):]),
				TargetLine: target,
				Span:       source.LineSpan(path, toCol(index+1), toCol(col+1), toCol(len(original)+1)),
			}, true
		}
	}
	return IgnoreDirective{}, false
}

// findDirectiveToken locates token in s, skipping pyre-ignore occurrences
// that are really the pyre-ignore-all-errors mode comment.
func findDirectiveToken(s, token string, kind IgnoreKind) int {
	from := 0
	for {
		i := strings.Index(s[from:], token)
		if i < 0 {
			return -1
		}
		i += from
		if kind == PyreIgnore && strings.HasPrefix(s[i:], "pyre-ignore-all-errors") {
			from = i + 1
			continue
		}
		return i
	}
}

// outsideQuotes returns the chunks of line that sit outside quoted string
// regions: the line is split on both quote characters and only chunks at
// even split-indices survive. An unterminated quote swallows the rest of
// the line.
func outsideQuotes(line string) []string {
	var out []string
	piece := 0
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] == '\'' || line[i] == '"' {
			if piece%2 == 0 {
				out = append(out, line[start:i])
			}
			piece++
			start = i + 1
		}
	}
	if piece%2 == 0 {
		out = append(out, line[start:])
	}
	return out
}

// parseBracketCodes extracts the suppressed codes from the nearest [...]
// bracket after the matched token: a comma/space-separated integer list.
// Malformed contents (non-numeric, empty, unterminated) degrade to nil,
// which suppresses every code.
func parseBracketCodes(rest string) []int {
	open := strings.IndexByte(rest, '[')
	if open < 0 {
		return nil
	}
	length := strings.IndexByte(rest[open+1:], ']')
	if length < 0 {
		return nil
	}
	inner := rest[open+1 : open+1+length]
	fields := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' '
	})
	var codes []int
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil
		}
		codes = append(codes, n)
	}
	return codes
}

// asciiLower lowers ASCII letters only. Unicode-aware lowering can change
// byte length, which would break column bookkeeping against the original
// line.
func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}

func toCol(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	return v
}
