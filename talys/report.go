package talys

// RunReport is the outcome of preparing one reaction. Warnings cover
// recoverable conditions (existing directory, overwritten input file,
// directory-creation failure tolerated for interactive use); Err is set
// only for fatal conditions that left no usable input file.
type RunReport struct {
	Index     int
	Reaction  Reaction
	DirName   string
	InputPath string
	Warnings  []string
	Err       error
}

// Failed reports whether this run ended in a fatal error.
func (r RunReport) Failed() bool { return r.Err != nil }

// Status classifies the report as "ok", "warning" or "failed".
func (r RunReport) Status() string {
	switch {
	case r.Err != nil:
		return "failed"
	case len(r.Warnings) > 0:
		return "warning"
	default:
		return "ok"
	}
}
