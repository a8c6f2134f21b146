package shipping

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cyberraf/giftyy-backend/pkg/db/models"
	pkgerrors "github.com/cyberraf/giftyy-backend/pkg/errors"
	"github.com/cyberraf/giftyy-backend/pkg/logger"
	"github.com/cyberraf/giftyy-backend/pkg/metrics"
	"github.com/cyberraf/giftyy-backend/pkg/money"
	"github.com/cyberraf/giftyy-backend/pkg/types"
)

const (
	modeSimple = "simple"
	modeZone   = "zone"
)

// Options carries the flat-policy defaults and lookup limits.
type Options struct {
	DefaultCostCents    int
	FreeThresholdCents  int
	VendorLookupTimeout time.Duration
	StoreName           string
}

func (o Options) withDefaults() Options {
	if o.DefaultCostCents <= 0 {
		o.DefaultCostCents = 499
	}
	if o.FreeThresholdCents <= 0 {
		o.FreeThresholdCents = 5000
	}
	if o.VendorLookupTimeout <= 0 {
		o.VendorLookupTimeout = 3 * time.Second
	}
	if o.StoreName == "" {
		o.StoreName = "Giftyy"
	}
	return o
}

// BreakdownEntry reports one partition's resolved charge.
type BreakdownEntry struct {
	VendorID      string `json:"vendor_id"`
	VendorName    string `json:"vendor_name"`
	SubtotalCents int    `json:"subtotal_cents"`
	ShippingCents int    `json:"shipping_cents"`
	ItemCount     int    `json:"item_count"`
}

// Quote is the outcome of one zone-aware resolution.
type Quote struct {
	TotalCents int              `json:"total_cents"`
	Breakdown  []BreakdownEntry `json:"breakdown"`
	Trace      Trace            `json:"trace"`
}

// Service prices carts for checkout.
type Service interface {
	// EstimateFlat applies the flat threshold policy per partition without
	// touching the catalog. It is the instant, I/O-free estimate.
	EstimateFlat(items []CartItem) int
	// QuoteByZone resolves each vendor partition against its configured
	// zones and rates, degrading per partition instead of failing the cart.
	QuoteByZone(ctx context.Context, items []CartItem, dest types.Destination) (*Quote, error)
}

type service struct {
	zones   ZoneSource
	rates   RateSource
	names   VendorNameSource
	logg    *logger.Logger
	metrics *metrics.ShippingMetrics
	opts    Options
}

// NewService builds the shipping resolver backed by the provided catalog.
func NewService(zones ZoneSource, rates RateSource, names VendorNameSource, logg *logger.Logger, m *metrics.ShippingMetrics, opts Options) (Service, error) {
	if zones == nil {
		return nil, fmt.Errorf("zone source required")
	}
	if rates == nil {
		return nil, fmt.Errorf("rate source required")
	}
	return &service{
		zones:   zones,
		rates:   rates,
		names:   names,
		logg:    logg,
		metrics: m,
		opts:    opts.withDefaults(),
	}, nil
}

func (s *service) EstimateFlat(items []CartItem) int {
	start := time.Now()
	total := 0
	for _, part := range PartitionItems(items) {
		total += s.flatPolicy(part.SubtotalCents)
	}
	s.metrics.IncQuote(modeSimple)
	s.metrics.ObserveDuration(modeSimple, time.Since(start))
	return total
}

func (s *service) QuoteByZone(ctx context.Context, items []CartItem, dest types.Destination) (*Quote, error) {
	if strings.TrimSpace(dest.Country) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "destination country is required")
	}

	start := time.Now()
	country := dest.NormalizedCountry()
	quote := &Quote{Breakdown: []BreakdownEntry{}}

	partitions := PartitionItems(items)
	for _, part := range partitions {
		shipping := s.resolvePartition(ctx, part, country, &quote.Trace)
		quote.TotalCents += shipping
		quote.Breakdown = append(quote.Breakdown, BreakdownEntry{
			VendorID:      part.Key,
			SubtotalCents: part.SubtotalCents,
			ShippingCents: shipping,
			ItemCount:     part.ItemCount,
		})
	}

	s.fillVendorNames(ctx, partitions, quote)

	s.metrics.IncQuote(modeZone)
	s.metrics.ObserveDuration(modeZone, time.Since(start))
	return quote, nil
}

// resolvePartition prices one partition. Lookup failures degrade to the
// flat policy for this partition only; missing configuration resolves to
// zero, which is a different outcome on purpose.
func (s *service) resolvePartition(ctx context.Context, part Partition, country string, trace *Trace) int {
	if part.IsDefault() {
		trace.add(Event{Step: StepFallback, PartitionKey: part.Key, Reason: ReasonNoVendor})
		return s.flatPolicy(part.SubtotalCents)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.opts.VendorLookupTimeout)
	defer cancel()

	vendorID := *part.VendorID
	zones, err := s.zones.ListZones(lookupCtx, vendorID)
	if err != nil {
		return s.lookupFallback(ctx, part, trace, err)
	}
	if len(zones) == 0 {
		trace.add(Event{Step: StepFallback, PartitionKey: part.Key, Reason: ReasonUnconfigured})
		return 0
	}

	zone, zoneReason := selectZone(zones, country)
	trace.add(Event{Step: StepZoneSelected, PartitionKey: part.Key, ZoneID: &zone.ID, Reason: zoneReason})
	if zoneReason == ReasonCatalogOrder {
		s.metrics.IncFallback(string(ReasonCatalogOrder))
	}

	rates, err := s.rates.ListRates(lookupCtx, zone.ID)
	if err != nil {
		return s.lookupFallback(ctx, part, trace, err)
	}
	if len(rates) == 0 {
		trace.add(Event{Step: StepFallback, PartitionKey: part.Key, ZoneID: &zone.ID, Reason: ReasonUnconfigured})
		return 0
	}

	rate, rateReason := selectRate(rates, part.SubtotalCents)
	trace.add(Event{Step: StepRateSelected, PartitionKey: part.Key, ZoneID: &zone.ID, RateID: &rate.ID, Reason: rateReason})
	if rateReason == ReasonCatalogOrder {
		s.metrics.IncFallback(string(ReasonCatalogOrder))
	}

	return s.rateCharge(ctx, part, rate, trace)
}

func (s *service) rateCharge(ctx context.Context, part Partition, rate models.ShippingRate, trace *Trace) int {
	if rate.IsFree {
		trace.add(Event{Step: StepRateSelected, PartitionKey: part.Key, RateID: &rate.ID, Reason: ReasonFreeRate})
		return 0
	}

	cents, ok := money.ParseRateCents(rate.Price)
	if !ok {
		trace.add(Event{Step: StepFallback, PartitionKey: part.Key, RateID: &rate.ID, Reason: ReasonInvalidPrice})
		s.metrics.IncFallback(string(ReasonInvalidPrice))
		if s.logg != nil {
			warnCtx := s.logg.WithFields(ctx, map[string]any{
				"vendor_id": part.Key,
				"rate_id":   rate.ID.String(),
				"price":     rate.Price,
			})
			s.logg.Warn(warnCtx, "shipping rate has unusable price, charging zero")
		}
		return 0
	}
	return cents
}

func (s *service) lookupFallback(ctx context.Context, part Partition, trace *Trace, err error) int {
	trace.add(Event{Step: StepFallback, PartitionKey: part.Key, Reason: ReasonLookupError})
	s.metrics.IncFallback(string(ReasonLookupError))
	if s.logg != nil {
		warnCtx := s.logg.WithVendorID(ctx, part.Key)
		s.logg.Error(warnCtx, "shipping catalog lookup failed, using flat policy", err)
	}
	return s.flatPolicy(part.SubtotalCents)
}

func (s *service) flatPolicy(subtotalCents int) int {
	if subtotalCents >= s.opts.FreeThresholdCents {
		return 0
	}
	return s.opts.DefaultCostCents
}

// fillVendorNames decorates the breakdown with display names. A directory
// failure only costs the labels, never the quote.
func (s *service) fillVendorNames(ctx context.Context, partitions []Partition, quote *Quote) {
	var vendorIDs []uuid.UUID
	for _, part := range partitions {
		if !part.IsDefault() {
			vendorIDs = append(vendorIDs, *part.VendorID)
		}
	}

	names := map[uuid.UUID]string{}
	if s.names != nil && len(vendorIDs) > 0 {
		lookupCtx, cancel := context.WithTimeout(ctx, s.opts.VendorLookupTimeout)
		defer cancel()
		resolved, err := s.names.GetNames(lookupCtx, vendorIDs)
		if err != nil {
			if s.logg != nil {
				s.logg.Error(ctx, "vendor directory lookup failed, using placeholders", err)
			}
		} else {
			names = resolved
		}
	}

	for i := range quote.Breakdown {
		entry := &quote.Breakdown[i]
		if entry.VendorID == DefaultPartitionKey {
			entry.VendorName = s.opts.StoreName
			continue
		}
		id, err := uuid.Parse(entry.VendorID)
		if err == nil {
			if name, ok := names[id]; ok && name != "" {
				entry.VendorName = name
				continue
			}
		}
		entry.VendorName = placeholderName(entry.VendorID)
	}
}

func placeholderName(vendorID string) string {
	if len(vendorID) > 8 {
		vendorID = vendorID[:8]
	}
	return "Vendor " + vendorID
}
