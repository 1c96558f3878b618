
// Package fuzztests houses Go fuzz harnesses that exercise the scanning
// front of the pipeline (source -> lines -> directives, path -> qualifier).
// Its goal is to smoke test robustness and guard against panics or invariant
// breaks on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые нормализуют байты в строки
// и прогоняют их через сканер директив и вывод квалификаторов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/metadata, internal/qualifier,
// internal/testkit.

package fuzztests
