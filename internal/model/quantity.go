package model

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ErrInvalidQuantity is returned when a quantity cannot be read as an integer.
var ErrInvalidQuantity = errors.New("quantity must be an integer")

// Quantity is a stock count that accepts either a JSON number or a numeric
// string ("15"). An absent or null value decodes as 0.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidQuantity
	}

	switch v := raw.(type) {
	case nil:
		*q = 0
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return ErrInvalidQuantity
		}
		*q = Quantity(n)
	case float64:
		if v != math.Trunc(v) {
			return ErrInvalidQuantity
		}
		n, err := cast.ToIntE(v)
		if err != nil {
			return ErrInvalidQuantity
		}
		*q = Quantity(n)
	default:
		return ErrInvalidQuantity
	}

	return nil
}

func (q Quantity) Int() int {
	return int(q)
}
