package cli

import "strings"

// FormatAmount renders an integer amount in the smallest currency
// denomination with dot thousands separators, e.g. 1500000 ->
// "1.500.000". Formatting is presentation-only; the engine never sees
// formatted values.
func FormatAmount(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := []byte{}
	if amount == 0 {
		digits = append(digits, '0')
	}
	for amount > 0 {
		digits = append(digits, byte('0'+amount%10))
		amount /= 10
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
		if i > 0 && i%3 == 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// FormatCurrency prefixes an amount with the currency symbol.
func FormatCurrency(symbol string, amount int64) string {
	if symbol == "" {
		return FormatAmount(amount)
	}
	return symbol + " " + FormatAmount(amount)
}
