package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Credential trims a login field; both username and password only need to
// be non-empty.
func Credential(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Name validates a displayable product name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// ID parses a product or order id from a form value.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}

// Qty parses a quantity, defaulting to 1 and clamping abuse.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Delta parses a signed quantity change (+1 / -1 buttons).
func Delta(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n != 0
}

// Price parses a positive price.
func Price(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil && v > 0
}

// Rating parses a star rating; range checking stays with the catalog.
func Rating(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}

// Q trims a search query and caps its length.
func Q(s string) string {
	return truncate(strings.TrimSpace(s), 50)
}

// Text trims free-form review text and caps its length.
func Text(s string) string {
	return truncate(strings.TrimSpace(s), 500)
}

// truncate caps s at max runes. Cutting on byte indexes could split a
// multi-byte rune and echo invalid UTF-8 back into the page.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
