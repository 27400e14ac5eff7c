package utils

import "math"

// Truncate corta o valor em n casas decimais, sem arredondar. NaN e infinitos viram zero.
func Truncate(f float64, places int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	p := math.Pow(10, float64(places))
	return math.Trunc(f*p) / p
}
