package shipping

import (
	"testing"

	"github.com/google/uuid"
)

func TestPartitionItemsGroupsByVendor(t *testing.T) {
	t.Parallel()

	v1 := uuid.New()
	v2 := uuid.New()

	items := []CartItem{
		{ID: "1", Price: "$30.00", Quantity: 1, VendorID: &v1},
		{ID: "2", Price: "$25.00", Quantity: 2, VendorID: &v2},
		{ID: "3", Price: "$10.00", Quantity: 1, VendorID: &v1},
		{ID: "4", Price: "$5.00", Quantity: 3},
	}

	parts := PartitionItems(items)
	if len(parts) != 3 {
		t.Fatalf("expected 3 partitions, got %d", len(parts))
	}

	if parts[0].Key != v1.String() || parts[0].SubtotalCents != 4000 || parts[0].ItemCount != 2 {
		t.Fatalf("unexpected first partition %+v", parts[0])
	}
	if parts[1].Key != v2.String() || parts[1].SubtotalCents != 5000 || parts[1].ItemCount != 2 {
		t.Fatalf("unexpected second partition %+v", parts[1])
	}
	if parts[2].Key != DefaultPartitionKey || !parts[2].IsDefault() || parts[2].SubtotalCents != 1500 {
		t.Fatalf("unexpected default partition %+v", parts[2])
	}
}

func TestPartitionItemsTreatsNilUUIDAsDefault(t *testing.T) {
	t.Parallel()

	nilID := uuid.Nil
	parts := PartitionItems([]CartItem{
		{ID: "1", Price: "$8.00", Quantity: 1, VendorID: &nilID},
	})
	if len(parts) != 1 || !parts[0].IsDefault() {
		t.Fatalf("nil vendor uuid should land in the default partition: %+v", parts)
	}
}

func TestPartitionItemsMalformedPriceCountsAsZero(t *testing.T) {
	t.Parallel()

	v1 := uuid.New()
	parts := PartitionItems([]CartItem{
		{ID: "1", Price: "not-a-price", Quantity: 2, VendorID: &v1},
		{ID: "2", Price: "$4.50", Quantity: 2, VendorID: &v1},
	})
	if len(parts) != 1 {
		t.Fatalf("expected one partition, got %d", len(parts))
	}
	if parts[0].SubtotalCents != 900 {
		t.Fatalf("malformed price must contribute zero, got subtotal %d", parts[0].SubtotalCents)
	}
}

func TestPartitionItemsEmptyCart(t *testing.T) {
	t.Parallel()

	if parts := PartitionItems(nil); len(parts) != 0 {
		t.Fatalf("expected no partitions for empty cart, got %d", len(parts))
	}
}

func TestPartitionOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	v1 := uuid.New()
	v2 := uuid.New()
	items := []CartItem{
		{ID: "1", Price: "$1.00", Quantity: 1, VendorID: &v2},
		{ID: "2", Price: "$1.00", Quantity: 1, VendorID: &v1},
		{ID: "3", Price: "$1.00", Quantity: 1, VendorID: &v2},
	}

	first := PartitionItems(items)
	second := PartitionItems(items)
	for i := range first {
		if first[i].Key != second[i].Key {
			t.Fatalf("partition order changed between calls")
		}
	}
	if first[0].Key != v2.String() {
		t.Fatalf("partitions must follow first-seen order")
	}
}
