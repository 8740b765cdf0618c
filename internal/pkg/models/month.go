package models

// Month is the 1-12 ordinal of a calendar month. Transactions are partitioned
// by the month component of their sale date only; the year never participates
// in a query, so records from different years sharing a month collapse
// together.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// ParseMonth maps a month name to its Month value. The match is exact and
// case-sensitive against the twelve English month names; anything else is
// ErrInvalidMonth.
func ParseMonth(name string) (Month, error) {
	for i, n := range monthNames {
		if n == name {
			return Month(i + 1), nil
		}
	}
	return 0, ErrInvalidMonth
}

// Ordinal returns the 1-12 calendar ordinal of the month.
func (m Month) Ordinal() int {
	return int(m)
}

// String returns the English month name, or "Unknown" for an out-of-range
// value.
func (m Month) String() string {
	if m < January || m > December {
		return "Unknown"
	}
	return monthNames[m-1]
}
