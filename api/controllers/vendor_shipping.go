package controllers

import (
	"net/http"

	"github.com/cyberraf/giftyy-backend/api/responses"
	"github.com/cyberraf/giftyy-backend/api/validators"
	"github.com/cyberraf/giftyy-backend/internal/shippingconfig"
	"github.com/cyberraf/giftyy-backend/pkg/logger"
)

type createZoneRequest struct {
	Name          string              `json:"name" validate:"required"`
	Countries     []string            `json:"countries"`
	IsRestOfWorld bool                `json:"is_rest_of_world"`
	Rates         []createRatePayload `json:"rates" validate:"dive"`
}

type updateZoneRequest struct {
	Name          *string   `json:"name,omitempty"`
	Countries     *[]string `json:"countries,omitempty"`
	IsRestOfWorld *bool     `json:"is_rest_of_world,omitempty"`
	Position      *int      `json:"position,omitempty"`
}

type createRatePayload struct {
	Name             string `json:"name" validate:"required"`
	Price            string `json:"price"`
	IsFree           bool   `json:"is_free"`
	MinSubtotalCents *int   `json:"min_subtotal_cents,omitempty"`
	MaxSubtotalCents *int   `json:"max_subtotal_cents,omitempty"`
}

func (p createRatePayload) toInput() shippingconfig.CreateRateInput {
	return shippingconfig.CreateRateInput{
		Name:             p.Name,
		Price:            p.Price,
		IsFree:           p.IsFree,
		MinSubtotalCents: p.MinSubtotalCents,
		MaxSubtotalCents: p.MaxSubtotalCents,
	}
}

// VendorListShippingZones returns a vendor's zones with their rates.
func VendorListShippingZones(svc shippingconfig.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := validators.UUIDParam(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		zones, err := svc.ListZones(r.Context(), vendorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, zones)
	}
}

// VendorCreateShippingZone creates a zone, optionally with initial rates.
func VendorCreateShippingZone(svc shippingconfig.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := validators.UUIDParam(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req createZoneRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := shippingconfig.CreateZoneInput{
			Name:          req.Name,
			Countries:     req.Countries,
			IsRestOfWorld: req.IsRestOfWorld,
		}
		for _, rate := range req.Rates {
			input.Rates = append(input.Rates, rate.toInput())
		}

		zone, err := svc.CreateZone(r.Context(), vendorID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, zone)
	}
}

// VendorUpdateShippingZone patches zone fields.
func VendorUpdateShippingZone(svc shippingconfig.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := validators.UUIDParam(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		zoneID, err := validators.UUIDParam(r, "zoneId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateZoneRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		zone, err := svc.UpdateZone(r.Context(), vendorID, zoneID, shippingconfig.UpdateZoneInput{
			Name:          req.Name,
			Countries:     req.Countries,
			IsRestOfWorld: req.IsRestOfWorld,
			Position:      req.Position,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, zone)
	}
}

// VendorDeleteShippingZone removes a zone and its rates.
func VendorDeleteShippingZone(svc shippingconfig.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := validators.UUIDParam(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		zoneID, err := validators.UUIDParam(r, "zoneId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteZone(r.Context(), vendorID, zoneID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// VendorCreateShippingRate attaches a rate to an existing zone.
func VendorCreateShippingRate(svc shippingconfig.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := validators.UUIDParam(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		zoneID, err := validators.UUIDParam(r, "zoneId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req createRatePayload
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rate, err := svc.CreateRate(r.Context(), vendorID, zoneID, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, rate)
	}
}

// VendorDeleteShippingRate removes one rate from a zone.
func VendorDeleteShippingRate(svc shippingconfig.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := validators.UUIDParam(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		zoneID, err := validators.UUIDParam(r, "zoneId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rateID, err := validators.UUIDParam(r, "rateId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteRate(r.Context(), vendorID, zoneID, rateID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
