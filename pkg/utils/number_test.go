package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Sem casas extras", input: 2.5, expected: 2.5},
		{name: "Arredonda para cima", input: 2.676, expected: 2.68},
		{name: "Arredonda para baixo", input: 2.674, expected: 2.67},
		{name: "Meio exato afasta de zero", input: 0.125, expected: 0.13},
		{name: "Negativo afasta de zero", input: -0.125, expected: -0.13},
		{name: "Zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundWithTwoDecimalPlace(tt.input), 1e-9)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "15750.50", FormatMoney(15750.499))
	assert.Equal(t, "0.00", FormatMoney(0))
	assert.Equal(t, "10.00", FormatMoney(10))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "5%", FormatPercent(5.0))
	assert.Equal(t, "25.5%", FormatPercent(25.5))
	assert.Equal(t, "0%", FormatPercent(0))
}
