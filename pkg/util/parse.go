package util

import (
	"strconv"
)

// MustParseFloat parses the string as float64 and panics on malformed input.
// Use it only on fields the exchange documents as numeric strings.
func MustParseFloat(s string) float64 {
	if len(s) == 0 {
		return 0.0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseFloat is the non-panicking variant for fields observed to be empty or
// absent on some exchanges.
func ParseFloat(s string) (float64, error) {
	if len(s) == 0 {
		return 0.0, nil
	}

	return strconv.ParseFloat(s, 64)
}

func FormatFloat(val float64, prec int) string {
	return strconv.FormatFloat(val, 'f', prec, 64)
}
