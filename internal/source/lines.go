package source

import (
	"slices"
	"strings"
)

// SplitLines normalizes raw file content (UTF-8 BOM removal, CRLF to LF)
// and splits it on '\n'. A trailing newline yields a trailing empty line,
// so the result is never empty and its length is the file's line count.
func SplitLines(content []byte) []string {
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return strings.Split(string(content), "\n")
}

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг: были ли замены (true, если хотя бы одна).
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Быстрый путь: если нет \r, возвращаем как есть.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}
