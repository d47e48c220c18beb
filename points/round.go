package points

import "math"

// Round rounds x to precision decimal digits, half away from zero.
// A negative precision rounds to tens, hundreds, ... (Round(1250, -2) == 1300).
//
// Complexity: O(1).
func Round(x float64, precision int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if precision < 0 {
		factor := math.Pow(10, float64(-precision))
		return math.Round(x/factor) * factor
	}
	factor := math.Pow(10, float64(precision))

	return math.Round(x*factor) / factor
}
