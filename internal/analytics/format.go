package analytics

import (
	"math"
	"strconv"
)

type scale struct {
	min    float64
	suffix string
}

var scales = []scale{
	{1_000_000_000, "B"},
	{1_000_000, "M"},
	{1_000, "K"},
}

// FormatNumber renders a count for listing cards: billions keep one decimal,
// millions and thousands are rounded to whole units. 1_500_000 -> "2M".
func FormatNumber(n int64) string {
	v := float64(n)
	for i, s := range scales {
		if v >= s.min {
			decimals := 0
			if i == 0 {
				decimals = 1
			}
			return fixed(v/s.min, decimals) + s.suffix
		}
	}
	return strconv.FormatInt(n, 10)
}

// FormatCompact renders a count for analytics panels with one decimal at
// every scale. 1_500_000 -> "1.5M".
func FormatCompact(n int64) string {
	v := float64(n)
	for _, s := range scales {
		if v >= s.min {
			return fixed(v/s.min, 1) + s.suffix
		}
	}
	return strconv.FormatInt(n, 10)
}

// fixed formats v with the given decimals, rounding halves up.
func fixed(v float64, decimals int) string {
	p := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*p)/p, 'f', decimals, 64)
}
