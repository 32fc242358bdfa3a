package talys

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Sheet and column names expected in the data workbook. Header matching is
// exact and case-sensitive.
const (
	nuclideSheet  = "Sheet1"
	reactionSheet = "Sheet2"
)

var (
	nuclideColumns  = []string{"Ydin", "N", "Z", "A", "MEJYFL", "MEAME20"}
	reactionColumns = []string{"Target", "Projectile", "Ejectile", "Compound"}
)

// Dataset holds the two tables loaded from the data workbook. Both preserve
// the source sheet's row order and are immutable after loading.
type Dataset struct {
	Nuclides  []Nuclide
	Reactions []Reaction
}

// LoadDataset reads the nuclide mass table and the reaction table from the
// workbook at path. A missing file, sheet, or column is a hard error: the
// workbook schema is fixed and a partial load would silently change which
// rows end up in the generated input files.
func LoadDataset(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening data workbook: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logrus.Warnf("closing data workbook %s: %v", path, closeErr)
		}
	}()

	nuclRows, err := sheetColumns(f, nuclideSheet, nuclideColumns)
	if err != nil {
		return nil, fmt.Errorf("malformed input table: %w", err)
	}
	reacRows, err := sheetColumns(f, reactionSheet, reactionColumns)
	if err != nil {
		return nil, fmt.Errorf("malformed input table: %w", err)
	}

	ds := &Dataset{
		Nuclides:  make([]Nuclide, 0, len(nuclRows)),
		Reactions: make([]Reaction, 0, len(reacRows)),
	}
	for _, r := range nuclRows {
		ds.Nuclides = append(ds.Nuclides, Nuclide{
			Symbol:          r[0],
			N:               r[1],
			Z:               r[2],
			A:               r[3],
			MassExcessJYFL:  r[4],
			MassExcessAME20: r[5],
		})
	}
	for _, r := range reacRows {
		ds.Reactions = append(ds.Reactions, Reaction{
			Target:     r[0],
			Projectile: r[1],
			Ejectile:   r[2],
			Compound:   r[3],
		})
	}
	return ds, nil
}

// sheetColumns selects the named columns from a sheet, preserving row order.
// The first row is the header; data rows keep one string per requested
// column, empty when the source cell is blank.
func sheetColumns(f *excelize.File, sheet string, columns []string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q: missing header row", sheet)
	}

	header := rows[0]
	indices := make([]int, len(columns))
	for i, want := range columns {
		pos := -1
		for j, got := range header {
			if got == want {
				pos = j
				break
			}
		}
		if pos < 0 {
			return nil, fmt.Errorf("sheet %q: missing column %q", sheet, want)
		}
		indices[i] = pos
	}

	selected := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]string, len(columns))
		for i, pos := range indices {
			// GetRows trims trailing empty cells per row.
			if pos < len(row) {
				cells[i] = row[pos]
			}
		}
		selected = append(selected, cells)
	}
	return selected, nil
}
