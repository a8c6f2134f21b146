package shipping

import (
	"testing"

	"github.com/google/uuid"

	"github.com/cyberraf/giftyy-backend/pkg/db/models"
)

func intPtr(v int) *int { return &v }

func TestSelectRateConditionedMatchBeatsUnconditioned(t *testing.T) {
	t.Parallel()

	flat := models.ShippingRate{ID: uuid.New(), Price: "5.00"}
	freeOver50 := models.ShippingRate{ID: uuid.New(), IsFree: true, MinSubtotalCents: intPtr(5000)}
	rates := []models.ShippingRate{flat, freeOver50}

	rate, reason := selectRate(rates, 8000)
	if rate.ID != freeOver50.ID || reason != ReasonConditionMatch {
		t.Fatalf("subtotal 8000 should hit the free conditioned rate, got %v (%s)", rate.ID, reason)
	}

	rate, reason = selectRate(rates, 2000)
	if rate.ID != flat.ID || reason != ReasonUnconditioned {
		t.Fatalf("subtotal 2000 should fall back to the flat rate, got %v (%s)", rate.ID, reason)
	}
}

func TestSelectRateBoundsAreInclusive(t *testing.T) {
	t.Parallel()

	banded := models.ShippingRate{
		ID:               uuid.New(),
		Price:            "3.00",
		MinSubtotalCents: intPtr(1000),
		MaxSubtotalCents: intPtr(2000),
	}
	flat := models.ShippingRate{ID: uuid.New(), Price: "9.00"}
	rates := []models.ShippingRate{banded, flat}

	for _, subtotal := range []int{1000, 1500, 2000} {
		if rate, _ := selectRate(rates, subtotal); rate.ID != banded.ID {
			t.Fatalf("subtotal %d should match the banded rate", subtotal)
		}
	}
	if rate, _ := selectRate(rates, 2001); rate.ID != flat.ID {
		t.Fatal("subtotal above max must not match the banded rate")
	}
	if rate, _ := selectRate(rates, 999); rate.ID != flat.ID {
		t.Fatal("subtotal below min must not match the banded rate")
	}
}

func TestSelectRatePicksCheapestMatch(t *testing.T) {
	t.Parallel()

	pricey := models.ShippingRate{ID: uuid.New(), Price: "12.00", MinSubtotalCents: intPtr(0)}
	cheap := models.ShippingRate{ID: uuid.New(), Price: "4.00", MinSubtotalCents: intPtr(0)}
	rates := []models.ShippingRate{pricey, cheap}

	rate, reason := selectRate(rates, 500)
	if rate.ID != cheap.ID || reason != ReasonConditionMatch {
		t.Fatalf("expected cheapest matching conditioned rate, got %v", rate.ID)
	}
}

func TestSelectRateLastResortUsesCatalogOrder(t *testing.T) {
	t.Parallel()

	first := models.ShippingRate{ID: uuid.New(), Price: "7.00", MinSubtotalCents: intPtr(10000)}
	second := models.ShippingRate{ID: uuid.New(), Price: "2.00", MinSubtotalCents: intPtr(20000)}
	rates := []models.ShippingRate{first, second}

	rate, reason := selectRate(rates, 500)
	if rate.ID != first.ID || reason != ReasonCatalogOrder {
		t.Fatalf("expected first catalog rate as last resort, got %v (%s)", rate.ID, reason)
	}
}

func TestSelectRateUnconditionedPrefersFree(t *testing.T) {
	t.Parallel()

	paid := models.ShippingRate{ID: uuid.New(), Price: "6.00"}
	free := models.ShippingRate{ID: uuid.New(), IsFree: true, Price: "99.00"}
	rates := []models.ShippingRate{paid, free}

	rate, _ := selectRate(rates, 100)
	if rate.ID != free.ID {
		t.Fatal("free rate sorts as zero and must win among unconditioned rates")
	}
}
