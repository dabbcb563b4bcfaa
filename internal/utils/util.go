package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// StringDecimals shifts an integer amount by decimals places, e.g.
// ("1500000000", 9) -> "1.5". Amounts that are not numbers are returned as is.
func StringDecimals(amount string, decimals int) string {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return amount
	}
	return d.Shift(int32(-decimals)).String()
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
