package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cyberraf/giftyy-backend/internal/shipping"
	pkgerrors "github.com/cyberraf/giftyy-backend/pkg/errors"
	"github.com/cyberraf/giftyy-backend/pkg/types"
)

type stubShippingService struct {
	flatTotal int
	quote     *shipping.Quote
	quoteErr  error

	gotItems []shipping.CartItem
	gotDest  types.Destination
}

func (s *stubShippingService) EstimateFlat(items []shipping.CartItem) int {
	s.gotItems = items
	return s.flatTotal
}

func (s *stubShippingService) QuoteByZone(ctx context.Context, items []shipping.CartItem, dest types.Destination) (*shipping.Quote, error) {
	s.gotItems = items
	s.gotDest = dest
	if s.quoteErr != nil {
		return nil, s.quoteErr
	}
	return s.quote, nil
}

func TestShippingEstimateSuccess(t *testing.T) {
	svc := &stubShippingService{flatTotal: 499}
	handler := ShippingEstimate(svc, nil)

	payload := []byte(`{"items":[{"id":"1","price":"$20.00","quantity":1}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/estimate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data shippingEstimateResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.TotalCents != 499 || envelope.Data.Total != "4.99" {
		t.Fatalf("unexpected response %+v", envelope.Data)
	}
	if len(svc.gotItems) != 1 || svc.gotItems[0].Price != "$20.00" {
		t.Fatalf("items not forwarded: %+v", svc.gotItems)
	}
}

func TestShippingEstimateRejectsMalformedBody(t *testing.T) {
	handler := ShippingEstimate(&stubShippingService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/estimate", bytes.NewReader([]byte(`{"items": "nope"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestShippingQuoteSuccess(t *testing.T) {
	svc := &stubShippingService{quote: &shipping.Quote{
		TotalCents: 699,
		Breakdown: []shipping.BreakdownEntry{
			{VendorID: "v2", VendorName: "Wrap Star", ShippingCents: 699},
		},
	}}
	handler := ShippingQuote(svc, nil)

	payload := []byte(`{"items":[{"id":"1","price":"$25.00","quantity":1}],"destination":{"country":"US"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotDest.Country != "US" {
		t.Fatalf("destination not forwarded: %+v", svc.gotDest)
	}
	var envelope struct {
		Data shipping.Quote `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.TotalCents != 699 || len(envelope.Data.Breakdown) != 1 {
		t.Fatalf("unexpected quote %+v", envelope.Data)
	}
}

func TestShippingQuoteMissingCountry(t *testing.T) {
	handler := ShippingQuote(&stubShippingService{}, nil)

	payload := []byte(`{"items":[],"destination":{"state":"CA"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestShippingQuoteServiceError(t *testing.T) {
	svc := &stubShippingService{quoteErr: pkgerrors.New(pkgerrors.CodeValidation, "destination country is required")}
	handler := ShippingQuote(svc, nil)

	payload := []byte(`{"items":[],"destination":{"country":"US"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
