package order

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Line is one (product, quantity) request within an order. Lines are
// applied in the order the caller supplies them; duplicate product
// references are not merged.
type Line struct {
	ProductID int64
	Quantity  int64
}

// lineToken matches the wire form of a single order line.
var lineToken = regexp.MustCompile(`^\d+:\d+$`)

// ParseLine parses a single "product_id:quantity" token.
// Quantity must be at least 1; a zero quantity fails validation here,
// before any storage is touched.
func ParseLine(token string) (Line, error) {
	if !lineToken.MatchString(token) {
		return Line{}, &ValidationError{
			Message: fmt.Sprintf("invalid order line %q, expected product_id:quantity", token),
		}
	}

	idStr, qtyStr, _ := strings.Cut(token, ":")

	productID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return Line{}, &ValidationError{
			Message: fmt.Sprintf("invalid product id in order line %q: %v", token, err),
		}
	}

	quantity, err := strconv.ParseInt(qtyStr, 10, 64)
	if err != nil {
		return Line{}, &ValidationError{
			Message: fmt.Sprintf("invalid quantity in order line %q: %v", token, err),
		}
	}
	if quantity < 1 {
		return Line{}, &ValidationError{
			Message: fmt.Sprintf("quantity must be at least 1 in order line %q", token),
		}
	}

	return Line{ProductID: productID, Quantity: quantity}, nil
}

// ParseLines parses a sequence of "product_id:quantity" tokens,
// preserving their order. An empty token set is a validation error.
func ParseLines(tokens []string) ([]Line, error) {
	if len(tokens) == 0 {
		return nil, &ValidationError{Message: "at least one order line is required"}
	}

	lines := make([]Line, 0, len(tokens))
	for _, token := range tokens {
		line, err := ParseLine(token)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
