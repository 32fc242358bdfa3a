package talys

import "github.com/sirupsen/logrus"

// Invoker launches the external TALYS process on a prepared run: the input
// file as its configuration, the run directory as its working directory.
// This tool only prepares runs today, so the pipeline is wired with
// NoopInvoker; a process-spawning implementation can be dropped in without
// touching the pipeline.
type Invoker interface {
	Invoke(runDir, inputPath string) error
}

// NoopInvoker satisfies Invoker without launching anything.
type NoopInvoker struct{}

func (NoopInvoker) Invoke(runDir, inputPath string) error {
	logrus.Debugf("run invocation stubbed: dir=%s input=%s", runDir, inputPath)
	return nil
}
