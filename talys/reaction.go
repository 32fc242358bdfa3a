package talys

import "fmt"

// Reaction is one row of the reaction table. Target is expected to match a
// Nuclide.Symbol in the same workbook; that is checked when the input file
// is written, not at load time.
type Reaction struct {
	Target     string
	Projectile string
	Ejectile   string
	Compound   string
}

// String renders the reaction in conventional notation, e.g. "56Ni(p,g)57Cu".
func (r Reaction) String() string {
	return fmt.Sprintf("%s(%s,%s)%s", r.Target, r.Projectile, r.Ejectile, r.Compound)
}
