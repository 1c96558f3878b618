package fuzztests

import (
	"testing"

	"pyrite/internal/metadata"
	"pyrite/internal/source"
	"pyrite/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzDirectiveScan(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		lines := source.SplitLines(input)
		md := metadata.Parse(metadata.Config{}, "fuzz.py", lines)
		if err := testkit.CheckScanInvariants("fuzz.py", lines, md); err != nil {
			t.Fatal(err)
		}

		// Глобальный strict переопределяет решение файла всегда.
		strict := metadata.Parse(metadata.Config{Strict: true}, "fuzz.py", lines)
		if strict.Mode.Kind != metadata.ModeStrict {
			t.Fatalf("strict config resolved to %v", strict.Mode)
		}
		if !strict.LocalMode.Equal(md.LocalMode) {
			t.Fatalf("config changed the local candidate: %v vs %v", strict.LocalMode, md.LocalMode)
		}
	})
}
