package cart

import (
	"encoding/json"
	"fmt"
)

// Encode serializes the cart to the persisted JSON array form. Encoding is a
// pure function; writing the result to storage is the service's concern.
func Encode(lines Lines) ([]byte, error) {
	if lines == nil {
		lines = Lines{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("encoding cart: %w", err)
	}
	return payload, nil
}

// Decode parses a persisted cart payload. Lines with a missing product ID or
// a quantity below 1 mean the record was corrupted; callers downgrade any
// Decode error to an empty cart.
func Decode(payload []byte) (Lines, error) {
	var lines Lines
	if err := json.Unmarshal(payload, &lines); err != nil {
		return nil, fmt.Errorf("decoding cart: %w", err)
	}
	for _, line := range lines {
		if line.Product.ID == "" {
			return nil, fmt.Errorf("decoding cart: line missing product id")
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("decoding cart: quantity %d below 1", line.Quantity)
		}
	}
	if lines == nil {
		lines = Lines{}
	}
	return lines, nil
}
