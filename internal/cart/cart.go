package cart

import "github.com/calabarlabs/storefront-backend/internal/catalog"

// Line is one (product, quantity) pair in a cart. Quantity is always >= 1;
// no two lines in a cart share a product ID.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Lines is a cart: an ordered collection of lines, insertion order preserved
// for display. The mutation helpers return the updated collection.
type Lines []Line

// Add increments the quantity of an existing line for the product, or appends
// a new line with quantity 1.
func (l Lines) Add(product catalog.Product) Lines {
	for i := range l {
		if l[i].Product.ID == product.ID {
			l[i].Quantity++
			return l
		}
	}
	return append(l, Line{Product: product, Quantity: 1})
}

// Remove deletes the line for the product ID. Removing an absent product is a
// no-op.
func (l Lines) Remove(productID string) Lines {
	for i := range l {
		if l[i].Product.ID == productID {
			return append(l[:i:i], l[i+1:]...)
		}
	}
	return l
}

// UpdateQuantity adds delta to the matching line's quantity, clamped to a
// minimum of 1. Reaching the floor stops further decrease; the line is never
// removed through this path. Unknown product IDs are a no-op.
func (l Lines) UpdateQuantity(productID string, delta int) Lines {
	for i := range l {
		if l[i].Product.ID == productID {
			next := l[i].Quantity + delta
			if next < 1 {
				next = 1
			}
			l[i].Quantity = next
			return l
		}
	}
	return l
}

// Clear empties the collection.
func (l Lines) Clear() Lines {
	return Lines{}
}

// Count is the sum of line quantities, used for the cart badge.
func (l Lines) Count() int {
	total := 0
	for _, line := range l {
		total += line.Quantity
	}
	return total
}

// Subtotal is the sum of unit price times quantity over all lines.
func (l Lines) Subtotal() int64 {
	var total int64
	for _, line := range l {
		total += line.Product.Price * int64(line.Quantity)
	}
	return total
}
