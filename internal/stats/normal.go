package stats

import "math"

// Cdf returns the standard normal CDF Φ(x).
//
// Uses the Abramowitz & Stegun 26.2.17 rational approximation, which is
// accurate to about 7.5e-8 — more than enough headroom for boundary
// arithmetic at the alpha levels used in sequential monitoring.
// Cdf(0) is exactly 0.5.
func Cdf(x float64) float64 {
	if x == 0 {
		return 0.5
	}
	if math.IsNaN(x) {
		return math.NaN()
	}
	if math.IsInf(x, 1) {
		return 1
	}
	if math.IsInf(x, -1) {
		return 0
	}

	neg := x < 0
	if neg {
		x = -x
	}

	k := 1.0 / (1.0 + 0.2316419*x)
	poly := k * (0.319381530 + k*(-0.356563782+k*(1.781477937+k*(-1.821255978+k*1.330274429))))
	phi := math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
	p := 1 - phi*poly

	if neg {
		return 1 - p
	}
	return p
}

// Acklam's inverse-normal coefficients. Three regions: a low tail, a central
// rational approximation, and a high tail mirrored from the low one.
var (
	invA = [6]float64{
		-3.969683028665376e+01, 2.209460984245205e+02,
		-2.759285104469687e+02, 1.383577518672690e+02,
		-3.066479806614716e+01, 2.506628277459239e+00,
	}
	invB = [5]float64{
		-5.447609879822406e+01, 1.615858368580409e+02,
		-1.556989798598866e+02, 6.680131188771972e+01,
		-1.328068155288572e+01,
	}
	invC = [6]float64{
		-7.784894002430293e-03, -3.223964580411365e-01,
		-2.400758277161838e+00, -2.549732539343734e+00,
		4.374664141464968e+00, 2.938163982698783e+00,
	}
	invD = [4]float64{
		7.784695709041462e-03, 3.224671290700398e-01,
		2.445134137142996e+00, 3.754408661907416e+00,
	}
)

const (
	invPLow  = 0.02425
	invPHigh = 1 - invPLow
)

// Quantile returns the standard normal quantile (inverse CDF) for p.
//
// Out-of-domain probabilities are handled by definition rather than by
// error: Quantile(p<=0) = -Inf, Quantile(p>=1) = +Inf. Quantile(0.5) is
// exactly 0. Satisfies Cdf(Quantile(p)) ≈ p to better than 1e-6 across
// p in (0.001, 0.999).
func Quantile(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return math.NaN()
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return math.Inf(1)
	case p == 0.5:
		return 0
	}

	switch {
	case p < invPLow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((invC[0]*q+invC[1])*q+invC[2])*q+invC[3])*q+invC[4])*q + invC[5]) /
			((((invD[0]*q+invD[1])*q+invD[2])*q+invD[3])*q + 1)
	case p > invPHigh:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((invC[0]*q+invC[1])*q+invC[2])*q+invC[3])*q+invC[4])*q + invC[5]) /
			((((invD[0]*q+invD[1])*q+invD[2])*q+invD[3])*q + 1)
	default:
		q := p - 0.5
		r := q * q
		return (((((invA[0]*r+invA[1])*r+invA[2])*r+invA[3])*r+invA[4])*r + invA[5]) * q /
			(((((invB[0]*r+invB[1])*r+invB[2])*r+invB[3])*r+invB[4])*r + 1)
	}
}
