package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addHeaderSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все файлы Python
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".py" && ext != ".pyi" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addHeaderSeeds covers the directive grammar with canonical headers.
func addHeaderSeeds(f *testing.F) {
	seeds := []string{
		"",
		"# pyre-strict\n",
		"# pyre-ignore-all-errors\n",
		"# pyre-ignore-all-errors[7, 16]\n",
		"# pyre-placeholder-stub\n",
		"#!/usr/bin/env python2\nimport os\n",
		"# " + "@" + "generated by codegen\nx = 1\n",
		"def f():\n    return g()  # pyre-fixme[7]: bad return\n",
		"# pyre-ignore[58]\nvalue = compute()\n",
		"x = y  # type: ignore\n",
		"s = \"not a # pyre-fixme\"\n",
		"\xef\xbb\xbf# pyre-strict\r\nx = 1\r\n",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
