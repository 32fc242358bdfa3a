package talys

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options configure a Prepare run. Zero values select the defaults: system
// clock, JYFL mass source, no-op invoker.
type Options struct {
	Params     RunParams
	MassSource MassSource
	Clock      Clock
	Invoker    Invoker
}

// Prepare runs the directory-creation and input-writing pipeline once per
// selected reaction index. Each selection is processed independently: a
// fatal error on one reaction does not stop the rest, and every selection
// gets its own RunReport in selection order.
func Prepare(ds *Dataset, root string, selections []int, opts Options) []RunReport {
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.Invoker == nil {
		opts.Invoker = NoopInvoker{}
	}
	if opts.MassSource == "" {
		opts.MassSource = MassSourceJYFL
	}

	reports := make([]RunReport, 0, len(selections))
	for _, index := range selections {
		reports = append(reports, prepareOne(ds, root, index, opts))
	}
	return reports
}

func prepareOne(ds *Dataset, root string, index int, opts Options) RunReport {
	report := RunReport{Index: index}

	// Bounds are checked before any filesystem side effect so a bad index
	// leaves no half-named directory behind.
	if index < 0 || index >= len(ds.Reactions) {
		report.Err = fmt.Errorf("reaction index %d out of range: table has %d rows", index, len(ds.Reactions))
		return report
	}
	reaction := ds.Reactions[index]
	report.Reaction = reaction

	name := RunDirName(opts.Clock, reaction.Projectile, reaction.Target, opts.Params)
	report.DirName = name
	logrus.Infof("preparing reaction %d %s as %s", index, reaction, name)

	if w := CreateRunDir(root, name); w != "" {
		report.Warnings = append(report.Warnings, w)
	}

	path, warning, err := WriteInput(ds, index, opts.Params, opts.MassSource, root, name)
	if warning != "" {
		report.Warnings = append(report.Warnings, warning)
	}
	if err != nil {
		report.Err = err
		return report
	}
	report.InputPath = path

	if err := opts.Invoker.Invoke(filepath.Join(root, name), path); err != nil {
		report.Err = fmt.Errorf("invoking simulator: %w", err)
	}
	return report
}
