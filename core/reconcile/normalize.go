package reconcile

import (
	"fmt"
	"strconv"
	"strings"
)

// overTenToken is the vendor's marker for "more than ten in stock".
const overTenToken = ">10"

// overTenQuantity is the stock level reported for overTenToken rows.
const overTenQuantity = 100

// ParseError reports a quantity or price descriptor that could not be
// normalized. Code is filled in by Reconcile when the offending row is known.
type ParseError struct {
	// Field names the descriptor that failed ("quantity" or "price").
	Field string

	// Code is the product code of the offending row, when available.
	Code string

	// Text is the raw descriptor value.
	Text string
}

func (e *ParseError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("cannot parse %s %q for product %s", e.Field, e.Text, e.Code)
	}
	return fmt.Sprintf("cannot parse %s %q", e.Field, e.Text)
}

// NormalizeQuantity converts a vendor quantity descriptor into a stock level.
//
// The vendor encodes two special cases as text: ">10" means ample stock and
// is reported as 100, and "1" means the last unit is likely reserved and is
// reported as 0. Everything else must be a plain non-negative integer.
func NormalizeQuantity(text string) (int, error) {
	switch text {
	case overTenToken:
		return overTenQuantity, nil
	case "1":
		// Business rule: a single remaining unit counts as unavailable.
		return 0, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0, &ParseError{Field: "quantity", Text: text}
	}
	return n, nil
}

// NormalizePrice converts a vendor price descriptor into a whole-unit
// integer price. The fractional part (after the first ".") is discarded and
// every non-digit character of the remainder is stripped, so "5'990.00 руб."
// becomes 5990. A descriptor with no digits at all fails with a ParseError
// rather than silently normalizing to zero.
func NormalizePrice(text string) (int, error) {
	whole, _, _ := strings.Cut(text, ".")

	var digits strings.Builder
	for _, r := range whole {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, &ParseError{Field: "price", Text: text}
	}

	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, &ParseError{Field: "price", Text: text}
	}
	return n, nil
}
