package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percentage converte uma fração (0.0123) em porcentagem com duas casas (1.23)
func Percentage(fraction float64) float64 {
	return RoundWithTwoDecimalPlace(fraction * 100)
}
