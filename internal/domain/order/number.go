package order

import "fmt"

// Order numbers are human-facing codes in the form REP-<year>-<seq>,
// with the sequence scoped per year and zero-padded to three digits.

func FormatNumber(year, seq int) string {
	return fmt.Sprintf("REP-%04d-%03d", year, seq)
}

// ParseNumber extracts year and sequence from an order number. The
// sequence may exceed three digits once a year passes 999 orders.
func ParseNumber(number string) (year, seq int, err error) {
	if _, err = fmt.Sscanf(number, "REP-%d-%d", &year, &seq); err != nil {
		return 0, 0, fmt.Errorf("malformed order number %q", number)
	}
	return year, seq, nil
}
