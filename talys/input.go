package talys

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// InputFileName returns the input-file name used inside a run directory.
func InputFileName(dirName string) string {
	return dirName + "_input.txt"
}

// massEntry is one exportable nuclide row after numeric coercion.
type massEntry struct {
	Z  int
	A  int
	ME float64
}

// massEntries filters the nuclide table down to rows where Z, A and the
// selected mass-excess column all parse as numbers. Rows that fail are
// dropped silently; the table order is preserved.
func massEntries(nuclides []Nuclide, src MassSource) []massEntry {
	entries := make([]massEntry, 0, len(nuclides))
	for _, n := range nuclides {
		z, err := parseCellInt(n.Z)
		if err != nil {
			continue
		}
		a, err := parseCellInt(n.A)
		if err != nil {
			continue
		}
		me, err := parseCellFloat(n.MassExcess(src))
		if err != nil {
			continue
		}
		entries = append(entries, massEntry{Z: z, A: a, ME: me})
	}
	return entries
}

// parseCellFloat parses a workbook cell as a float. Spreadsheet numeric
// cells may carry stray whitespace from manual editing.
func parseCellFloat(cell string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(cell), 64)
}

// parseCellInt parses a workbook cell as an integer, accepting float
// renderings like "28.0" that spreadsheets produce for integer columns.
func parseCellInt(cell string) (int, error) {
	v, err := parseCellFloat(cell)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// WriteInput writes the TALYS input file for the reaction at the given index
// into root/dirName. Fixed simulation keywords come first, then one
// "massexcess Z A ME" line per numeric-valid nuclide row in table order.
//
// An out-of-range index or a target symbol absent from the nuclide table is
// a hard error with no file written. An existing input file is overwritten
// in place after a logged warning; the warning is also returned so callers
// can surface it. The write is not atomic.
func WriteInput(ds *Dataset, index int, p RunParams, src MassSource, root, dirName string) (path string, warning string, err error) {
	if index < 0 || index >= len(ds.Reactions) {
		return "", "", fmt.Errorf("reaction index %d out of range: table has %d rows", index, len(ds.Reactions))
	}
	reaction := ds.Reactions[index]

	target, ok := findNuclide(ds.Nuclides, reaction.Target)
	if !ok {
		return "", "", fmt.Errorf("reaction target %q not found in nuclide table", reaction.Target)
	}
	zTarget, err := parseCellInt(target.Z)
	if err != nil {
		return "", "", fmt.Errorf("target %q: non-numeric Z %q", target.Symbol, target.Z)
	}
	aTarget, err := parseCellInt(target.A)
	if err != nil {
		return "", "", fmt.Errorf("target %q: non-numeric A %q", target.Symbol, target.A)
	}

	path = filepath.Join(root, dirName, InputFileName(dirName))
	if _, statErr := os.Stat(path); statErr == nil {
		logrus.Warnf("input file %s already exists; overwriting", path)
		warning = fmt.Sprintf("input file %s already exists; overwriting", InputFileName(dirName))
	}

	file, err := os.Create(path)
	if err != nil {
		return "", warning, fmt.Errorf("creating input file: %w", err)
	}

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "energy 0.1\n")
	fmt.Fprintf(w, "projectile %s\n", reaction.Projectile)
	fmt.Fprintf(w, "element %d\n", zTarget)
	fmt.Fprintf(w, "mass %d\n", aTarget)
	fmt.Fprintf(w, "ldmodel %d\n", p.Ldmodel)
	fmt.Fprintf(w, "strength %d\n", p.Strength)
	fmt.Fprintf(w, "massmodel %d\n", p.Massmodel)
	fmt.Fprintf(w, "astro y\n")
	fmt.Fprintf(w, "transeps 1e-25\n")
	fmt.Fprintf(w, "xseps 1e-25\n")
	fmt.Fprintf(w, "popeps 1e-25\n")
	fmt.Fprintf(w, "gnorm y\n")
	fmt.Fprintf(w, "outlevels y\n")
	fmt.Fprintf(w, "outdensity y\n")
	fmt.Fprintf(w, "outgamma y\n")
	fmt.Fprintf(w, "expmass y\n")
	entries := massEntries(ds.Nuclides, src)
	for _, e := range entries {
		fmt.Fprintf(w, "massexcess %d %d %.3f\n", e.Z, e.A, e.ME)
	}

	if flushErr := w.Flush(); flushErr != nil {
		_ = file.Close()
		return "", warning, fmt.Errorf("writing input file: %w", flushErr)
	}
	if closeErr := file.Close(); closeErr != nil {
		return "", warning, fmt.Errorf("closing input file: %w", closeErr)
	}

	logrus.Infof("wrote input file %s with %d mass-excess entries", path, len(entries))
	return path, warning, nil
}
