package shipping

import (
	"github.com/google/uuid"

	"github.com/cyberraf/giftyy-backend/pkg/money"
)

// CartItem is one cart line as submitted by the checkout client. Price
// arrives as display text; VendorID is nil for items not attributed to a
// marketplace vendor.
type CartItem struct {
	ID       string
	Price    string
	Quantity int
	VendorID *uuid.UUID
}

// LineTotalCents computes the line contribution to the partition subtotal.
// Unparsable prices count as zero, never as an error.
func (i CartItem) LineTotalCents() int {
	qty := i.Quantity
	if qty < 0 {
		qty = 0
	}
	return money.ParsePriceCents(i.Price) * qty
}
