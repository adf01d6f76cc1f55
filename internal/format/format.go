// File: internal/format/format.go

// Package format holds the pure presentation helpers shared by the email
// dispatcher: currency strings, date-part names, and name capitalization.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"bookinesia_backend/internal/common"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Money renders a numeric amount with thousands grouping and two decimal
// places, e.g. 12345.5 -> "12,345.50".
func Money(amount float64) string {
	return moneyPrinter.Sprintf("%.2f", amount)
}

// TotalTransaction sums the given line-item prices. An empty slice totals 0.
func TotalTransaction(prices []float64) float64 {
	var total float64
	for _, p := range prices {
		total += p
	}
	return total
}

// WeekdayName maps 0..6 (Sunday..Saturday) to its English name.
func WeekdayName(index int) (string, error) {
	if index < 0 || index >= len(weekdayNames) {
		return "", common.ErrInvalidArgument.WithDetails(fmt.Sprintf("weekday index %d is out of range 0..6", index))
	}
	return weekdayNames[index], nil
}

// MonthName maps 0..11 (January..December) to its English name.
func MonthName(index int) (string, error) {
	if index < 0 || index >= len(monthNames) {
		return "", common.ErrInvalidArgument.WithDetails(fmt.Sprintf("month index %d is out of range 0..11", index))
	}
	return monthNames[index], nil
}

// CapitalizeWords uppercases the first rune of every space-separated word and
// leaves the remainder of each word untouched. "" stays "".
func CapitalizeWords(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// ParseDate accepts the date formats the booking frontends send: RFC3339 or a
// bare calendar date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, common.ErrInvalidArgument.WithDetails(fmt.Sprintf("unparseable date %q, want RFC3339 or YYYY-MM-DD", s))
}

// LongDate renders a date as "<Weekday>, <Day> <Month> <Year>", the form used
// inside the email bodies.
func LongDate(t time.Time) string {
	day, _ := WeekdayName(int(t.Weekday()))
	month, _ := MonthName(int(t.Month()) - 1)
	return fmt.Sprintf("%s, %d %s %d", day, t.Day(), month, t.Year())
}

// SubjectDate renders a date the way subject lines spell it, e.g.
// "Fri Apr 05 2019".
func SubjectDate(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}
