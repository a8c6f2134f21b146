package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/cyberraf/giftyy-backend/api/responses"
	"github.com/cyberraf/giftyy-backend/api/validators"
	"github.com/cyberraf/giftyy-backend/internal/shipping"
	"github.com/cyberraf/giftyy-backend/pkg/logger"
	"github.com/cyberraf/giftyy-backend/pkg/money"
	"github.com/cyberraf/giftyy-backend/pkg/types"
)

type cartItemPayload struct {
	ID       string     `json:"id" validate:"required"`
	Price    string     `json:"price"`
	Quantity int        `json:"quantity" validate:"gte=0"`
	VendorID *uuid.UUID `json:"vendor_id,omitempty"`
}

type shippingEstimateRequest struct {
	Items []cartItemPayload `json:"items" validate:"dive"`
}

type shippingQuoteRequest struct {
	Items       []cartItemPayload  `json:"items" validate:"dive"`
	Destination destinationPayload `json:"destination"`
}

type destinationPayload struct {
	State   string `json:"state"`
	Country string `json:"country" validate:"required"`
}

type shippingEstimateResponse struct {
	TotalCents int    `json:"total_cents"`
	Total      string `json:"total"`
}

func toCartItems(payload []cartItemPayload) []shipping.CartItem {
	items := make([]shipping.CartItem, 0, len(payload))
	for _, item := range payload {
		items = append(items, shipping.CartItem{
			ID:       item.ID,
			Price:    item.Price,
			Quantity: item.Quantity,
			VendorID: item.VendorID,
		})
	}
	return items
}

// ShippingEstimate prices a cart with the flat threshold policy. No catalog
// lookups happen on this path.
func ShippingEstimate(svc shipping.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shippingEstimateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		total := svc.EstimateFlat(toCartItems(req.Items))
		responses.WriteSuccess(w, shippingEstimateResponse{
			TotalCents: total,
			Total:      money.FormatCents(total),
		})
	}
}

// ShippingQuote resolves the cart against each vendor's shipping zones.
func ShippingQuote(svc shipping.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shippingQuoteRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.QuoteByZone(r.Context(), toCartItems(req.Items), types.Destination{
			State:   req.Destination.State,
			Country: req.Destination.Country,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}
