package algorithms

import "math"

// Round2 округляет до двух знаков (деньги, проценты, match_score)
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Round1 округляет до одного знака (годы окупаемости)
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
