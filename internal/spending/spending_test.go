package spending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allFunctions() []Function {
	return []Function{
		OBrienFleming{},
		Pocock{},
		HaybittlePeto{},
		LanDeMets{Rho: 1.0},
		LanDeMets{Rho: 0.5},
	}
}

func TestSpendBounds(t *testing.T) {
	for _, fn := range allFunctions() {
		for _, alpha := range []float64{0.01, 0.05, 0.1, 0.5} {
			for tFrac := 0.01; tFrac < 1.0; tFrac += 0.01 {
				s := fn.Spend(tFrac, alpha)
				assert.GreaterOrEqual(t, s, 0.0, "%s spend(%v, %v)", fn.Name(), tFrac, alpha)
				assert.LessOrEqual(t, s, alpha, "%s spend(%v, %v)", fn.Name(), tFrac, alpha)
			}
		}
	}
}

func TestSpendMonotonic(t *testing.T) {
	for _, fn := range allFunctions() {
		prev := 0.0
		for tFrac := 0.0; tFrac <= 1.0; tFrac += 0.005 {
			s := fn.Spend(tFrac, 0.05)
			assert.GreaterOrEqual(t, s, prev-1e-12, "%s must be non-decreasing at t=%v", fn.Name(), tFrac)
			prev = s
		}
	}
}

func TestSpendEndpoints(t *testing.T) {
	for _, fn := range allFunctions() {
		assert.Equal(t, 0.0, fn.Spend(0, 0.05), "%s spend(0)", fn.Name())
		assert.InDelta(t, 0.05, fn.Spend(1, 0.05), 1e-6, "%s spend(1)", fn.Name())
	}
}

func TestOBrienFlemingSpendsLate(t *testing.T) {
	fn := OBrienFleming{}
	early := fn.Spend(0.2, 0.05)
	late := 0.05 - fn.Spend(0.8, 0.05)

	// Almost nothing at the first of five looks, a large share still
	// unspent entering the final look.
	assert.Less(t, early, 1e-4)
	assert.Greater(t, late, 0.02)
}

func TestPocockSpendsEvenly(t *testing.T) {
	fn := Pocock{}
	first := fn.Spend(0.2, 0.05)
	assert.Greater(t, first, 0.01, "Pocock spends a meaningful share at the first look")
}

func TestHaybittlePetoInterim(t *testing.T) {
	fn := HaybittlePeto{}
	assert.InDelta(t, 0.0005, fn.Spend(0.5, 0.05), 1e-12)
	assert.Equal(t, 0.05, fn.Spend(1, 0.05))
}

func TestLanDeMetsFamily(t *testing.T) {
	// rho=1 is linear in t; rho=0.5 spends faster early, like Pocock.
	assert.InDelta(t, 0.025, LanDeMets{Rho: 1}.Spend(0.5, 0.05), 1e-12)
	assert.Greater(t, LanDeMets{Rho: 0.5}.Spend(0.2, 0.05), LanDeMets{Rho: 1}.Spend(0.2, 0.05))

	// Zero rho falls back to the default.
	assert.InDelta(t, LanDeMets{Rho: DefaultRho}.Spend(0.3, 0.05), LanDeMets{}.Spend(0.3, 0.05), 1e-12)
}

func TestInflationFactors(t *testing.T) {
	assert.Equal(t, 1.015, OBrienFleming{}.InflationFactor())
	assert.Equal(t, 1.18, Pocock{}.InflationFactor())
	assert.Equal(t, 1.01, HaybittlePeto{}.InflationFactor())
	assert.Equal(t, 1.05, LanDeMets{}.InflationFactor())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		rho      float64
		wantName string
		wantErr  bool
	}{
		{name: NameOBrienFleming, wantName: NameOBrienFleming},
		{name: NamePocock, wantName: NamePocock},
		{name: NameHaybittlePeto, wantName: NameHaybittlePeto},
		{name: NameLanDeMets, rho: 0.5, wantName: NameLanDeMets},
		{name: NameLanDeMets, rho: 0, wantName: NameLanDeMets},
		{name: "bonferroni", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tt := range tests {
		fn, err := Parse(tt.name, tt.rho)
		if tt.wantErr {
			require.Error(t, err, "Parse(%q)", tt.name)
			continue
		}
		require.NoError(t, err, "Parse(%q)", tt.name)
		assert.Equal(t, tt.wantName, fn.Name())
	}
}

func TestCatalogCoversAllFunctions(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 4)
	for _, info := range catalog {
		fn, err := Parse(info.Name, 0)
		require.NoError(t, err)
		assert.Equal(t, fn.InflationFactor(), info.InflationFactor)
		assert.NotEmpty(t, info.Description)
	}
}
