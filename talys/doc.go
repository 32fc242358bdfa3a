// Package talys prepares run directories and input files for the TALYS
// nuclear-reaction code from a tabular data workbook.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - dataset.go: loading the nuclide and reaction tables from the workbook
//   - rundir.go: run-directory naming and creation
//   - input.go: the TALYS input file writer
//
// pipeline.go ties the stages together and runs them once per selected
// reaction, producing one RunReport per selection. Warnings (existing
// directories, overwritten input files) are carried in the report rather
// than signalled only through log output; fatal conditions (malformed
// workbook, unknown target nuclide, out-of-range reaction index) are
// returned as errors.
//
// The actual TALYS process is not launched; see Invoker for the extension
// point.
package talys
