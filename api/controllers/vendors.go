package controllers

import (
	"net/http"

	"github.com/cyberraf/giftyy-backend/api/responses"
	"github.com/cyberraf/giftyy-backend/api/validators"
	"github.com/cyberraf/giftyy-backend/internal/vendors"
	"github.com/cyberraf/giftyy-backend/pkg/logger"
)

// VendorsList returns a cursor-paginated page of active vendors.
func VendorsList(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := validators.PaginationParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// VendorsGet returns one vendor's public profile.
func VendorsGet(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := validators.UUIDParam(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vendor, err := svc.GetByID(r.Context(), vendorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, vendor)
	}
}
