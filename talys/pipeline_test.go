package talys

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenarioClock = FixedClock(time.Date(2025, time.January, 1, 9, 30, 0, 0, time.UTC))

func TestPrepare_SingleReaction(t *testing.T) {
	ds := scenarioDataset()
	root := t.TempDir()

	reports := Prepare(ds, root, []int{0}, Options{
		Params: RunParams{Ldmodel: 5, Strength: 8, Massmodel: 2},
		Clock:  scenarioClock,
	})
	require.Len(t, reports, 1)

	r := reports[0]
	require.NoError(t, r.Err)
	assert.Equal(t, "Run-010125_p56Ni-582", r.DirName)
	assert.Empty(t, r.Warnings)
	assert.Equal(t, "ok", r.Status())

	data, err := os.ReadFile(r.InputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "element 28\n")
	assert.Contains(t, string(data), "mass 56\n")
	assert.Contains(t, string(data), "massexcess 28 56 -53.900")
}

func TestPrepare_BadIndexDoesNotStopBatch(t *testing.T) {
	ds := scenarioDataset()
	root := t.TempDir()

	reports := Prepare(ds, root, []int{5, 0}, Options{Clock: scenarioClock})
	require.Len(t, reports, 2)

	assert.Error(t, reports[0].Err)
	assert.Contains(t, reports[0].Err.Error(), "out of range")
	assert.Equal(t, "failed", reports[0].Status())

	require.NoError(t, reports[1].Err)
	assert.NotEmpty(t, reports[1].InputPath)

	// The failed selection must not leave a run directory behind: only the
	// successful run's directory exists under the root.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, reports[1].DirName, entries[0].Name())
}

func TestPrepare_RerunReusesDirectoryAndOverwrites(t *testing.T) {
	ds := scenarioDataset()
	root := t.TempDir()

	first := Prepare(ds, root, []int{0}, Options{Clock: scenarioClock})
	require.NoError(t, first[0].Err)
	before, err := os.ReadFile(first[0].InputPath)
	require.NoError(t, err)

	second := Prepare(ds, root, []int{0}, Options{Clock: scenarioClock})
	require.NoError(t, second[0].Err)
	assert.Equal(t, "warning", second[0].Status())
	require.Len(t, second[0].Warnings, 2)
	assert.Contains(t, second[0].Warnings[0], "already exists")
	assert.Contains(t, second[0].Warnings[1], "overwriting")

	after, err := os.ReadFile(second[0].InputPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPrepare_UnknownTargetFailsThatRunOnly(t *testing.T) {
	ds := scenarioDataset()
	ds.Reactions = append(ds.Reactions,
		Reaction{Target: "99Xx", Projectile: "p", Ejectile: "g", Compound: "100Yy"})
	root := t.TempDir()

	reports := Prepare(ds, root, []int{0, 1}, Options{Clock: scenarioClock})
	require.Len(t, reports, 2)
	require.NoError(t, reports[0].Err)

	require.Error(t, reports[1].Err)
	assert.Contains(t, reports[1].Err.Error(), "not found in nuclide table")
	// Directory creation precedes the target lookup, so the directory may
	// remain; the input file must not.
	_, statErr := os.Stat(filepath.Join(root, reports[1].DirName, InputFileName(reports[1].DirName)))
	assert.True(t, os.IsNotExist(statErr))
}

type capturingInvoker struct {
	runDir    string
	inputPath string
	err       error
}

func (c *capturingInvoker) Invoke(runDir, inputPath string) error {
	c.runDir = runDir
	c.inputPath = inputPath
	return c.err
}

func TestPrepare_InvokerReceivesPreparedRun(t *testing.T) {
	ds := scenarioDataset()
	root := t.TempDir()
	inv := &capturingInvoker{}

	reports := Prepare(ds, root, []int{0}, Options{Clock: scenarioClock, Invoker: inv})
	require.NoError(t, reports[0].Err)
	assert.Equal(t, filepath.Join(root, reports[0].DirName), inv.runDir)
	assert.Equal(t, reports[0].InputPath, inv.inputPath)
}

func TestPrepare_InvokerErrorIsFatalForThatRun(t *testing.T) {
	ds := scenarioDataset()
	root := t.TempDir()
	inv := &capturingInvoker{err: errors.New("talys not installed")}

	reports := Prepare(ds, root, []int{0}, Options{Clock: scenarioClock, Invoker: inv})
	require.Error(t, reports[0].Err)
	assert.Contains(t, reports[0].Err.Error(), "invoking simulator")
}

func TestPrepare_EmptySelectionYieldsNoReports(t *testing.T) {
	ds := scenarioDataset()
	reports := Prepare(ds, t.TempDir(), nil, Options{Clock: scenarioClock})
	assert.Empty(t, reports)
}
