package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func gregorian(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestGregorianToEthiopic(t *testing.T) {
	cases := []struct {
		name      string
		gregorian time.Time
		want      EthiopicDate
	}{
		{"new year 2017", gregorian(2024, time.September, 11), EthiopicDate{2017, 1, 1}},
		{"new year 2016", gregorian(2023, time.September, 12), EthiopicDate{2016, 1, 1}},
		{"last day of pagume", gregorian(2024, time.September, 10), EthiopicDate{2016, 13, 5}},
		{"leap pagume 6", gregorian(2023, time.September, 11), EthiopicDate{2015, 13, 6}},
		{"mid year", gregorian(2026, time.August, 31), EthiopicDate{2018, 12, 25}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GregorianToEthiopic(tc.gregorian))
		})
	}
}

func TestEthiopicToGregorianRoundTrip(t *testing.T) {
	// Walk day by day across two Ethiopian new years, including a leap
	// Pagume, and require the conversion to invert exactly.
	day := gregorian(2023, time.August, 1)
	for i := 0; i < 800; i++ {
		e := GregorianToEthiopic(day)
		back := EthiopicToGregorian(e)
		assert.True(t, back.Equal(day), "round trip %s gave %s via %+v", day.Format("2006-01-02"), back.Format("2006-01-02"), e)
		day = day.AddDate(0, 0, 1)
	}
}

func TestFormatEthiopicDate(t *testing.T) {
	newYear := gregorian(2024, time.September, 11)
	assert.Equal(t, "Meskerem 1, 2017", FormatEthiopicDate(newYear, "en"))
	assert.Equal(t, "መስከረም 1 2017 ዓ.ም.", FormatEthiopicDate(newYear, "am"))
}

func TestMonthNameOutOfRange(t *testing.T) {
	assert.Equal(t, "", EthiopicDate{2017, 14, 1}.MonthName("en"))
	assert.Equal(t, "", EthiopicDate{2017, 0, 1}.MonthName("am"))
}
