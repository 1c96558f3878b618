package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevNote is for secondary, informational findings.
	SevNote Severity = iota
	// SevWarning is for findings that do not fail a check run.
	SevWarning
	// SevError is for findings that fail a check run.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevNote:
		return "note"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
