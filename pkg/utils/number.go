package utils

import (
	"math"
	"strconv"
)

// RoundWithTwoDecimalPlace arredonda para 2 casas decimais, com desempate
// afastando-se de zero (math.Round)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoney formata um valor monetário com 2 casas decimais. O
// arredondamento monetário acontece apenas na apresentação, nunca durante o
// cálculo intermediário.
func FormatMoney(f float64) string {
	return strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', 2, 64)
}

// FormatInt formata uma contagem inteira em base 10
func FormatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// FormatFloat formata um número sem casas decimais supérfluas
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatPercent formata uma taxa já arredondada com o sufixo de porcentagem
func FormatPercent(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "%"
}
