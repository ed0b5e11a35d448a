// utils/ethiopic.go
package utils

import (
	"fmt"
	"time"
)

// Julian day number of the Ethiopic epoch (Amete Mihret).
const ethiopicEpoch = 1723856

// languageAmharic mirrors models.LanguageAmharic; utils cannot import models.
const languageAmharic = "am"

// EthiopicDate is a date in the Ethiopian calendar. Month 13 (Pagume) has
// 5 days, 6 in an Ethiopian leap year.
type EthiopicDate struct {
	Year  int
	Month int
	Day   int
}

var ethiopicMonthsEnglish = [13]string{
	"Meskerem", "Tikimt", "Hidar", "Tahsas", "Tir", "Yekatit",
	"Megabit", "Miyazya", "Ginbot", "Sene", "Hamle", "Nehase", "Pagume",
}

var ethiopicMonthsAmharic = [13]string{
	"መስከረም", "ጥቅምት", "ኅዳር", "ታኅሣሥ", "ጥር", "የካቲት",
	"መጋቢት", "ሚያዝያ", "ግንቦት", "ሰኔ", "ሐምሌ", "ነሐሴ", "ጳጉሜን",
}

// gregorianToJDN converts a Gregorian calendar date to a Julian day number.
func gregorianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnToGregorian converts a Julian day number back to a Gregorian date.
func jdnToGregorian(jdn int) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153
	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10
	return
}

// GregorianToEthiopic converts t to its Ethiopian calendar date.
func GregorianToEthiopic(t time.Time) EthiopicDate {
	jdn := gregorianToJDN(t.Year(), int(t.Month()), t.Day())
	off := jdn - ethiopicEpoch
	r := off % 1461
	n := r%365 + 365*(r/1460)
	return EthiopicDate{
		Year:  4*(off/1461) + r/365 - r/1460,
		Month: n/30 + 1,
		Day:   n%30 + 1,
	}
}

// EthiopicToGregorian converts an Ethiopian calendar date to the Gregorian
// time.Time at midnight UTC of the same day.
func EthiopicToGregorian(e EthiopicDate) time.Time {
	jdn := ethiopicEpoch + 365 + 365*(e.Year-1) + e.Year/4 + 30*e.Month + e.Day - 31
	year, month, day := jdnToGregorian(jdn)
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// MonthName returns the Ethiopian month name in the given language.
func (e EthiopicDate) MonthName(language string) string {
	if e.Month < 1 || e.Month > 13 {
		return ""
	}
	if language == languageAmharic {
		return ethiopicMonthsAmharic[e.Month-1]
	}
	return ethiopicMonthsEnglish[e.Month-1]
}

// FormatEthiopicDate renders t as a localized Ethiopian calendar date,
// e.g. "Meskerem 1, 2017" or "መስከረም 1 2017 ዓ.ም.".
func FormatEthiopicDate(t time.Time, language string) string {
	e := GregorianToEthiopic(t)
	if language == languageAmharic {
		return fmt.Sprintf("%s %d %d ዓ.ም.", e.MonthName(language), e.Day, e.Year)
	}
	return fmt.Sprintf("%s %d, %d", e.MonthName(language), e.Day, e.Year)
}
