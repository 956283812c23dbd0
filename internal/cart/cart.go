// Package cart implements the per-session shopping cart: an ordered set of
// line items keyed by product, with derived count and subtotal.
package cart

import (
	"math"

	"github.com/google/uuid"
)

// LineItem pairs a product with an ordered quantity. Name, image and unit
// price are snapshots taken when the product was first added; later catalog
// changes do not affect lines already in the cart.
type LineItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int32     `json:"quantity"`
}

// Cart holds at most one line item per product, in insertion order.
// Quantities are always >= 1; count and subtotal are recomputed from the
// lines on every read so they can never go stale.
//
// A Cart is not safe for concurrent use; the owning session serializes
// access to it.
type Cart struct {
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

// Add merges the item into the cart. If a line item for the same product
// already exists its quantity increases by item.Quantity; otherwise the item
// is appended. Quantities below 1 are ignored; the aggregate saturates at
// the int32 maximum so a line quantity can never wrap negative.
func (c *Cart) Add(item LineItem) {
	if item.Quantity < 1 {
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			sum := int64(c.items[i].Quantity) + int64(item.Quantity)
			if sum > math.MaxInt32 {
				sum = math.MaxInt32
			}
			c.items[i].Quantity = int32(sum)
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove deletes the line item for the given product. Removing an absent
// product is a no-op.
func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line item's quantity to exactly quantity. A quantity
// below 1 removes the line item. Setting the quantity of an absent product
// is a no-op.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int32) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart. Called once, right after order placement.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Count is the sum of quantities across all line items.
func (c *Cart) Count() int32 {
	var count int32
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of unit price times quantity across all line items,
// using each line's recorded add-time price.
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, item := range c.items {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}
	return subtotal
}

// Snapshot is an immutable copy of the cart taken at a specific instant,
// decoupled from later mutations of the live cart.
type Snapshot struct {
	Items    []LineItem `json:"items"`
	Subtotal int64      `json:"subtotal"`
}

// Snapshot captures the current line items and subtotal.
func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		Items:    c.Items(),
		Subtotal: c.Subtotal(),
	}
}
