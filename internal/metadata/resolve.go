package metadata

// Resolve computes the effective analysis mode from the global
// configuration and the file-local candidate.
//
// Global flags are escalating overrides: infer beats everything, strict and
// declare beat their weaker local counterparts. A local placeholder-stub
// candidate resolves to Default here; stub handling consults
// Metadata.LocalMode directly instead of the effective mode.
func Resolve(cfg Config, local Mode) Mode {
	switch {
	case cfg.Infer:
		return Mode{Kind: ModeInfer}
	case cfg.Strict || local.Kind == ModeStrict:
		return Mode{Kind: ModeStrict}
	case cfg.Declare || local.Kind == ModeDeclare:
		return Mode{Kind: ModeDeclare}
	case local.Kind == ModeDefaultButDontCheck:
		return local
	default:
		return Mode{Kind: ModeDefault}
	}
}
