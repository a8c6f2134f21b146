package shipping

import "github.com/google/uuid"

// DefaultPartitionKey buckets cart lines that carry no vendor attribution.
const DefaultPartitionKey = "default"

// Partition is the subset of cart items attributed to one vendor, with the
// derived amounts both resolvers price independently.
type Partition struct {
	Key           string
	VendorID      *uuid.UUID
	SubtotalCents int
	ItemCount     int
	Items         []CartItem
}

// IsDefault reports whether the partition is the synthetic no-vendor bucket.
func (p Partition) IsDefault() bool {
	return p.VendorID == nil
}

// PartitionItems groups cart lines by vendor. Partition order follows the
// first appearance of each vendor in the cart so repeated calls over the
// same cart produce the same breakdown order.
func PartitionItems(items []CartItem) []Partition {
	var order []string
	byKey := map[string]*Partition{}

	for _, item := range items {
		key := DefaultPartitionKey
		var vendorID *uuid.UUID
		if item.VendorID != nil && *item.VendorID != uuid.Nil {
			key = item.VendorID.String()
			id := *item.VendorID
			vendorID = &id
		}

		part, ok := byKey[key]
		if !ok {
			part = &Partition{Key: key, VendorID: vendorID}
			byKey[key] = part
			order = append(order, key)
		}

		part.Items = append(part.Items, item)
		part.SubtotalCents += item.LineTotalCents()
		if item.Quantity > 0 {
			part.ItemCount += item.Quantity
		}
	}

	partitions := make([]Partition, 0, len(order))
	for _, key := range order {
		partitions = append(partitions, *byKey[key])
	}
	return partitions
}
