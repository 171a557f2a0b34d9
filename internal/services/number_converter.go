package services

import (
	"fmt"
	"math"
	"strings"
)

// AmountInWords converts a rupee amount to English words using the
// Indian grouping (lakh, crore), as printed on challan receipts.
// Example: 2375 -> "RUPEES TWO THOUSAND THREE HUNDRED SEVENTY FIVE ONLY"
func AmountInWords(amount float64) string {
	integerPart := int64(amount)
	paise := int64(math.Round((amount - float64(integerPart)) * 100))

	if integerPart == 0 && paise == 0 {
		return "RUPEES ZERO ONLY"
	}

	words := convertNumberToWords(integerPart)
	if paise > 0 {
		return fmt.Sprintf("RUPEES %s AND %s PAISE ONLY", strings.ToUpper(words), strings.ToUpper(convertNumberToWords(paise)))
	}
	return fmt.Sprintf("RUPEES %s ONLY", strings.ToUpper(words))
}

func convertNumberToWords(n int64) string {
	if n == 0 {
		return "ZERO"
	}

	if n < 0 {
		return "MINUS " + convertNumberToWords(-n)
	}

	if n < 20 {
		return belowTwenty[n]
	}

	if n < 100 {
		u := n % 10
		t := n / 10
		if u == 0 {
			return tens[t]
		}
		return fmt.Sprintf("%s %s", tens[t], belowTwenty[u])
	}

	if n < 1000 {
		remainder := n % 100
		hundredsText := belowTwenty[n/100] + " HUNDRED"
		if remainder == 0 {
			return hundredsText
		}
		return fmt.Sprintf("%s %s", hundredsText, convertNumberToWords(remainder))
	}

	// Indian grouping: thousand (10^3), lakh (10^5), crore (10^7)
	groups := []struct {
		value int64
		name  string
	}{
		{10000000, "CRORE"},
		{100000, "LAKH"},
		{1000, "THOUSAND"},
	}
	for _, g := range groups {
		if n >= g.value {
			quotient := n / g.value
			remainder := n % g.value
			text := fmt.Sprintf("%s %s", convertNumberToWords(quotient), g.name)
			if remainder == 0 {
				return text
			}
			return fmt.Sprintf("%s %s", text, convertNumberToWords(remainder))
		}
	}

	return "NUMBER TOO LARGE"
}

var belowTwenty = []string{
	"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN",
	"SIXTEEN", "SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tens = []string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY",
}
