package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatAmount formata um valor monetário para mensagens de log (sem casas decimais inúteis)
func FormatAmount(f float64) string {
	return strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', -1, 64)
}
