package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := map[int64]string{
		0:       "PKR 0",
		5:       "PKR 5",
		999:     "PKR 999",
		1000:    "PKR 1,000",
		45500:   "PKR 45,500",
		1234567: "PKR 1,234,567",
		-20000:  "PKR -20,000",
	}
	for amount, want := range cases {
		assert.Equal(t, want, FormatMoney(amount))
	}
}
