package domain

import "strconv"

func formatQuantity(n int, unit string) string {
	if unit == "" {
		return strconv.Itoa(n)
	}
	return strconv.Itoa(n) + " " + unit
}
