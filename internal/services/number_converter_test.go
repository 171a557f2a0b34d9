package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "RUPEES ZERO ONLY"},
		{5, "RUPEES FIVE ONLY"},
		{17, "RUPEES SEVENTEEN ONLY"},
		{40, "RUPEES FORTY ONLY"},
		{99, "RUPEES NINETY NINE ONLY"},
		{100, "RUPEES ONE HUNDRED ONLY"},
		{500, "RUPEES FIVE HUNDRED ONLY"},
		{2375, "RUPEES TWO THOUSAND THREE HUNDRED SEVENTY FIVE ONLY"},
		{100000, "RUPEES ONE LAKH ONLY"},
		{2550000, "RUPEES TWENTY FIVE LAKH FIFTY THOUSAND ONLY"},
		{10000000, "RUPEES ONE CRORE ONLY"},
		{12345678, "RUPEES ONE CRORE TWENTY THREE LAKH FORTY FIVE THOUSAND SIX HUNDRED SEVENTY EIGHT ONLY"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, AmountInWords(tt.amount), "amount %v", tt.amount)
	}
}

func TestAmountInWords_Paise(t *testing.T) {
	assert.Equal(t, "RUPEES TWO THOUSAND FOUR HUNDRED SIXTEEN AND FIFTY PAISE ONLY", AmountInWords(2416.50))
}
