package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cyberraf/giftyy-backend/internal/shippingconfig"
	pkgerrors "github.com/cyberraf/giftyy-backend/pkg/errors"
)

type stubCatalogService struct {
	zones     []shippingconfig.ZoneDTO
	zone      *shippingconfig.ZoneDTO
	rate      *shippingconfig.RateDTO
	err       error
	gotVendor uuid.UUID
	gotZone   uuid.UUID
	gotRate   uuid.UUID
}

func (s *stubCatalogService) ListZones(ctx context.Context, vendorID uuid.UUID) ([]shippingconfig.ZoneDTO, error) {
	s.gotVendor = vendorID
	return s.zones, s.err
}

func (s *stubCatalogService) CreateZone(ctx context.Context, vendorID uuid.UUID, input shippingconfig.CreateZoneInput) (*shippingconfig.ZoneDTO, error) {
	s.gotVendor = vendorID
	if s.err != nil {
		return nil, s.err
	}
	return s.zone, nil
}

func (s *stubCatalogService) UpdateZone(ctx context.Context, vendorID, zoneID uuid.UUID, input shippingconfig.UpdateZoneInput) (*shippingconfig.ZoneDTO, error) {
	s.gotVendor, s.gotZone = vendorID, zoneID
	if s.err != nil {
		return nil, s.err
	}
	return s.zone, nil
}

func (s *stubCatalogService) DeleteZone(ctx context.Context, vendorID, zoneID uuid.UUID) error {
	s.gotVendor, s.gotZone = vendorID, zoneID
	return s.err
}

func (s *stubCatalogService) CreateRate(ctx context.Context, vendorID, zoneID uuid.UUID, input shippingconfig.CreateRateInput) (*shippingconfig.RateDTO, error) {
	s.gotVendor, s.gotZone = vendorID, zoneID
	if s.err != nil {
		return nil, s.err
	}
	return s.rate, nil
}

func (s *stubCatalogService) DeleteRate(ctx context.Context, vendorID, zoneID, rateID uuid.UUID) error {
	s.gotVendor, s.gotZone, s.gotRate = vendorID, zoneID, rateID
	return s.err
}

func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestVendorCreateShippingZoneSuccess(t *testing.T) {
	vendorID := uuid.New()
	svc := &stubCatalogService{zone: &shippingconfig.ZoneDTO{ID: uuid.New(), VendorID: vendorID, Name: "Domestic"}}
	handler := VendorCreateShippingZone(svc, nil)

	payload := []byte(`{"name":"Domestic","countries":["US"],"rates":[{"name":"Standard","price":"4.99"}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendors/x/shipping/zones", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParams(req, map[string]string{"vendorId": vendorID.String()})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotVendor != vendorID {
		t.Fatalf("vendor id not forwarded: %s", svc.gotVendor)
	}
}

func TestVendorCreateShippingZoneBadVendorID(t *testing.T) {
	handler := VendorCreateShippingZone(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendors/x/shipping/zones", bytes.NewReader([]byte(`{}`)))
	req = withURLParams(req, map[string]string{"vendorId": "not-a-uuid"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestVendorListShippingZones(t *testing.T) {
	vendorID := uuid.New()
	svc := &stubCatalogService{zones: []shippingconfig.ZoneDTO{{ID: uuid.New(), Name: "Domestic"}}}
	handler := VendorListShippingZones(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendors/x/shipping/zones", nil)
	req = withURLParams(req, map[string]string{"vendorId": vendorID.String()})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data []shippingconfig.ZoneDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Name != "Domestic" {
		t.Fatalf("unexpected zones %+v", envelope.Data)
	}
}

func TestVendorDeleteShippingZoneNotFound(t *testing.T) {
	svc := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeNotFound, "shipping zone not found")}
	handler := VendorDeleteShippingZone(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/vendors/x/shipping/zones/y", nil)
	req = withURLParams(req, map[string]string{
		"vendorId": uuid.NewString(),
		"zoneId":   uuid.NewString(),
	})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestVendorCreateShippingRateForwardsIDs(t *testing.T) {
	vendorID := uuid.New()
	zoneID := uuid.New()
	svc := &stubCatalogService{rate: &shippingconfig.RateDTO{ID: uuid.New(), ZoneID: zoneID}}
	handler := VendorCreateShippingRate(svc, nil)

	payload := []byte(`{"name":"Standard","price":"4.99"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendors/x/shipping/zones/y/rates", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParams(req, map[string]string{
		"vendorId": vendorID.String(),
		"zoneId":   zoneID.String(),
	})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if svc.gotVendor != vendorID || svc.gotZone != zoneID {
		t.Fatalf("ids not forwarded: vendor %s zone %s", svc.gotVendor, svc.gotZone)
	}
}

func TestVendorDeleteShippingRate(t *testing.T) {
	vendorID := uuid.New()
	zoneID := uuid.New()
	rateID := uuid.New()
	svc := &stubCatalogService{}
	handler := VendorDeleteShippingRate(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/vendors/x/shipping/zones/y/rates/z", nil)
	req = withURLParams(req, map[string]string{
		"vendorId": vendorID.String(),
		"zoneId":   zoneID.String(),
		"rateId":   rateID.String(),
	})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotRate != rateID {
		t.Fatalf("rate id not forwarded: %s", svc.gotRate)
	}
}
