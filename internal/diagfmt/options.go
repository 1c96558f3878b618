package diagfmt

// PrettyOpts configures pretty-printing of diagnostics and scan reports.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	Verbose   bool // печатать и директивы подавления по каждому файлу
}

// JSONOpts configures JSON output.
type JSONOpts struct {
	Max          int // обрезка вывода, не Bag
	IncludeNotes bool
}
