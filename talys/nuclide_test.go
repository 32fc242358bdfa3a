package talys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMassSource(t *testing.T) {
	tests := []struct {
		in      string
		want    MassSource
		wantErr bool
	}{
		{in: "jyfl", want: MassSourceJYFL},
		{in: "ame20", want: MassSourceAME20},
		{in: "", want: MassSourceJYFL},
		{in: "AME20", wantErr: true},
		{in: "ame2020", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseMassSource(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNuclide_MassExcessSelectsColumn(t *testing.T) {
	n := Nuclide{MassExcessJYFL: "-53.9", MassExcessAME20: "-54.0"}
	assert.Equal(t, "-53.9", n.MassExcess(MassSourceJYFL))
	assert.Equal(t, "-54.0", n.MassExcess(MassSourceAME20))
}

func TestFindNuclide_FirstExactMatch(t *testing.T) {
	nuclides := []Nuclide{
		{Symbol: "56Ni", MassExcessJYFL: "first"},
		{Symbol: "56ni", MassExcessJYFL: "lowercase"},
		{Symbol: "56Ni", MassExcessJYFL: "duplicate"},
	}

	got, ok := findNuclide(nuclides, "56Ni")
	require.True(t, ok)
	assert.Equal(t, "first", got.MassExcessJYFL)

	_, ok = findNuclide(nuclides, "57Cu")
	assert.False(t, ok)
}

func TestReaction_String(t *testing.T) {
	r := Reaction{Target: "56Ni", Projectile: "p", Ejectile: "g", Compound: "57Cu"}
	assert.Equal(t, "56Ni(p,g)57Cu", r.String())
}
