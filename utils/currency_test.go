package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBirr(t *testing.T) {
	cases := []struct {
		amount   float64
		language string
		want     string
	}{
		{3500, "en", "3,500.00 Birr"},
		{3500, "am", "3,500.00 ብር"},
		{700, "en", "700.00 Birr"},
		{1234567.5, "en", "1,234,567.50 Birr"},
		{0, "en", "0.00 Birr"},
		{-250.75, "en", "-250.75 Birr"},
		{-12500, "en", "-12,500.00 Birr"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatBirr(tc.amount, tc.language))
	}
}
