package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParsePrice accepts display strings such as "R$ 12,90": everything except digits
// and commas is dropped and the comma becomes the decimal point.
func ParsePrice(raw string) (float64, error) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' {
			b.WriteRune(r)
		}
	}

	cleaned := strings.Replace(b.String(), ",", ".", -1)
	if cleaned == "" {
		return 0, &ValidationError{Field: "price", Message: "price is required"}
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, &ValidationError{Field: "price", Message: "invalid price " + raw}
	}
	return price, nil
}

// FormatBRL renders 2 decimals with a comma separator, e.g. 25.8 -> "25,80".
func FormatBRL(value float64) string {
	return strings.Replace(strconv.FormatFloat(RoundCents(value), 'f', 2, 64), ".", ",", 1)
}

func RoundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
