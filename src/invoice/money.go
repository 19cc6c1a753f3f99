package invoice

import (
	"fmt"
	"strconv"
)

// FormatMoney renders an integer rupee amount with thousands grouping.
// PKR carries no subunits here, so there are never decimals.
func FormatMoney(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return fmt.Sprintf("PKR -%s", out)
	}
	return fmt.Sprintf("PKR %s", out)
}
