package talys

import "fmt"

// Nuclide is one row of the nuclide mass table. Cell values are kept
// verbatim as read from the workbook; numeric coercion happens at export
// time so that rows with blank or non-numeric cells can be skipped without
// failing the whole load.
type Nuclide struct {
	Symbol          string // "Ydin" column, e.g. "56Ni"
	N               string // neutron count
	Z               string // proton count
	A               string // mass number
	MassExcessJYFL  string // mass excess from the JYFL measurement set (keV)
	MassExcessAME20 string // mass excess from the AME2020 evaluation (keV)
}

// MassSource selects which of the two mass-excess columns feeds the
// generated input file. The choice between JYFL and AME2020 values is a
// physics decision left to the operator; JYFL is the default.
type MassSource string

const (
	MassSourceJYFL  MassSource = "jyfl"
	MassSourceAME20 MassSource = "ame20"
)

// ParseMassSource validates a mass-source flag value.
func ParseMassSource(s string) (MassSource, error) {
	switch MassSource(s) {
	case MassSourceJYFL, MassSourceAME20:
		return MassSource(s), nil
	case "":
		return MassSourceJYFL, nil
	default:
		return "", fmt.Errorf("unknown mass source %q; valid: jyfl, ame20", s)
	}
}

// MassExcess returns the raw cell value of the selected mass-excess column.
func (n Nuclide) MassExcess(src MassSource) string {
	if src == MassSourceAME20 {
		return n.MassExcessAME20
	}
	return n.MassExcessJYFL
}

// findNuclide returns the first nuclide whose symbol matches exactly.
func findNuclide(nuclides []Nuclide, symbol string) (Nuclide, bool) {
	for _, n := range nuclides {
		if n.Symbol == symbol {
			return n, true
		}
	}
	return Nuclide{}, false
}
