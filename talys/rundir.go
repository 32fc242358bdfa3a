package talys

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// RunParams are the TALYS model-selection parameters passed through to the
// generated input file. The values are opaque codes to this tool.
type RunParams struct {
	Ldmodel   int
	Strength  int
	Massmodel int
}

// DefaultParams matches the CLI defaults.
var DefaultParams = RunParams{Ldmodel: 5, Strength: 8, Massmodel: 2}

// RunDirName computes the run-directory name for a reaction:
// Run-<DDMMYY>_<projectile><target>-<ldmodel><strength><massmodel>,
// e.g. Run-010125_p56Ni-582. Deterministic for a fixed clock; two runs on
// the same day with identical parameters collide, which CreateRunDir
// tolerates.
func RunDirName(clock Clock, projectile, target string, p RunParams) string {
	date := clock.Now().Format("020106")
	return fmt.Sprintf("Run-%s_%s%s-%d%d%d", date, projectile, target, p.Ldmodel, p.Strength, p.Massmodel)
}

// CreateRunDir creates root/name, parents included. An existing directory
// is reused: re-running against a stale run directory is an accepted
// workflow, so it is reported as a warning rather than an error. Creation
// failures are likewise reported as warnings and execution continues; the
// subsequent input-file write fails on its own if the directory is truly
// unusable. Returns an empty string when the directory was created cleanly.
func CreateRunDir(root, name string) string {
	path := filepath.Join(root, name)

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		logrus.Warnf("run directory %s already exists; reusing it", path)
		return fmt.Sprintf("directory %s already exists; previous contents may be stale", name)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		logrus.Warnf("creating run directory %s: %v", path, err)
		return fmt.Sprintf("creating directory %s: %v", name, err)
	}

	logrus.Infof("created run directory %s", path)
	return ""
}
