package spending

import (
	"fmt"
	"math"

	"sequential-monitor/internal/stats"
)

// Function is a cumulative alpha-spending strategy. Spend reports how much
// of the total false-positive budget alpha may have been consumed once the
// information fraction t of the experiment has been observed.
//
// Every implementation satisfies Spend(0, a) == 0, Spend(1, a) == a, and is
// non-decreasing in t. Implementations are stateless and safe to share.
type Function interface {
	Name() string
	Spend(t, alpha float64) float64

	// InflationFactor is the approximate multiplier on a fixed-design
	// sample size needed to preserve power under this spending schedule.
	InflationFactor() float64
}

// Canonical names accepted by Parse and used in configs and API payloads.
const (
	NameOBrienFleming = "obrien_fleming"
	NamePocock        = "pocock"
	NameHaybittlePeto = "haybittle_peto"
	NameLanDeMets     = "lan_demets"
)

// DefaultRho is the Lan-DeMets power parameter used when a config does not
// set one. rho=1 behaves like O'Brien-Fleming, rho=0.5 like Pocock.
const DefaultRho = 1.0

// clampSpend pins a spending value into [0, alpha] and resolves the t
// endpoints exactly so that accumulated boundary arithmetic stays total.
func clampSpend(t, alpha, raw float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return alpha
	}
	return math.Max(0, math.Min(alpha, raw))
}

// OBrienFleming spends almost nothing at early looks and nearly the whole
// budget close to the end: 2*(1 - Φ(z_{α/2}/√t)).
type OBrienFleming struct{}

func (OBrienFleming) Name() string             { return NameOBrienFleming }
func (OBrienFleming) InflationFactor() float64 { return 1.015 }

func (OBrienFleming) Spend(t, alpha float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return alpha
	}
	z := stats.Quantile(1 - alpha/2)
	return clampSpend(t, alpha, 2*(1-stats.Cdf(z/math.Sqrt(t))))
}

// Pocock spends the budget roughly evenly across looks:
// α·ln(1 + (e-1)·t).
type Pocock struct{}

func (Pocock) Name() string             { return NamePocock }
func (Pocock) InflationFactor() float64 { return 1.18 }

func (Pocock) Spend(t, alpha float64) float64 {
	return clampSpend(t, alpha, alpha*math.Log(1+(math.E-1)*t))
}

// HaybittlePeto keeps a fixed, very conservative budget at interim looks
// (0.001·t cumulative, roughly a z=3 boundary) and releases the full alpha
// only at the final look.
type HaybittlePeto struct{}

func (HaybittlePeto) Name() string             { return NameHaybittlePeto }
func (HaybittlePeto) InflationFactor() float64 { return 1.01 }

func (HaybittlePeto) Spend(t, alpha float64) float64 {
	return clampSpend(t, alpha, 0.001*t)
}

// LanDeMets is the generalized power family α·t^ρ.
type LanDeMets struct {
	Rho float64
}

func (LanDeMets) Name() string             { return NameLanDeMets }
func (LanDeMets) InflationFactor() float64 { return 1.05 }

func (f LanDeMets) Spend(t, alpha float64) float64 {
	rho := f.Rho
	if rho <= 0 {
		rho = DefaultRho
	}
	return clampSpend(t, alpha, alpha*math.Pow(t, rho))
}

// Parse selects a spending function by its canonical name. rho only applies
// to the Lan-DeMets family; pass 0 to use DefaultRho.
func Parse(name string, rho float64) (Function, error) {
	switch name {
	case NameOBrienFleming:
		return OBrienFleming{}, nil
	case NamePocock:
		return Pocock{}, nil
	case NameHaybittlePeto:
		return HaybittlePeto{}, nil
	case NameLanDeMets:
		if rho <= 0 {
			rho = DefaultRho
		}
		return LanDeMets{Rho: rho}, nil
	default:
		return nil, fmt.Errorf("unsupported spending function: %q", name)
	}
}

// Info describes one spending function for catalog listings.
type Info struct {
	Name            string
	Description     string
	InflationFactor float64
}

// Catalog returns descriptions of every supported spending function.
func Catalog() []Info {
	return []Info{
		{
			Name:            NameOBrienFleming,
			Description:     "Spends almost no alpha early; boundaries start very strict and relax toward the final look.",
			InflationFactor: OBrienFleming{}.InflationFactor(),
		},
		{
			Name:            NamePocock,
			Description:     "Spends alpha evenly; near-constant boundaries across looks.",
			InflationFactor: Pocock{}.InflationFactor(),
		},
		{
			Name:            NameHaybittlePeto,
			Description:     "Fixed conservative interim boundary (~z=3); full alpha reserved for the final look.",
			InflationFactor: HaybittlePeto{}.InflationFactor(),
		},
		{
			Name:            NameLanDeMets,
			Description:     "Power family alpha*t^rho; rho=1 approximates O'Brien-Fleming, rho=0.5 approximates Pocock.",
			InflationFactor: LanDeMets{}.InflationFactor(),
		},
	}
}
