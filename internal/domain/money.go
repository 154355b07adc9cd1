package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Centavos is a money amount in hundredths of a peso. Prices and totals
// are kept as integers; the two-decimal rendering is presentation only.
type Centavos int64

// ParseCentavos parses a decimal amount like "13.5", "13.50" or "100"
// into centavos. At most two fractional digits are accepted.
func ParseCentavos(s string) (Centavos, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q: too many decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, err)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, err)
	}
	c := Centavos(w*100 + f)
	if neg {
		c = -c
	}
	return c, nil
}

// Times returns the amount multiplied by a quantity.
func (c Centavos) Times(qty int) Centavos { return c * Centavos(qty) }

// String renders the amount with the currency glyph and two decimals.
func (c Centavos) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s₱%d.%02d", sign, v/100, v%100)
}
