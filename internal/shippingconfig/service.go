package shippingconfig

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/cyberraf/giftyy-backend/pkg/db/models"
	pkgerrors "github.com/cyberraf/giftyy-backend/pkg/errors"
	"github.com/cyberraf/giftyy-backend/pkg/money"
)

type catalogRepository interface {
	ListZones(ctx context.Context, vendorID uuid.UUID) ([]models.ShippingZone, error)
	ListZonesWithRates(ctx context.Context, vendorID uuid.UUID) ([]models.ShippingZone, error)
	FindZone(ctx context.Context, vendorID, zoneID uuid.UUID) (*models.ShippingZone, error)
	CreateZone(ctx context.Context, zone *models.ShippingZone) error
	UpdateZone(ctx context.Context, zone *models.ShippingZone) error
	DeleteZone(ctx context.Context, vendorID, zoneID uuid.UUID) error
	CountZones(ctx context.Context, vendorID uuid.UUID) (int64, error)
	ListRates(ctx context.Context, zoneID uuid.UUID) ([]models.ShippingRate, error)
	CreateRate(ctx context.Context, rate *models.ShippingRate) error
	DeleteRate(ctx context.Context, zoneID, rateID uuid.UUID) error
	CountRates(ctx context.Context, zoneID uuid.UUID) (int64, error)
}

// Service exposes vendor shipping catalog management.
type Service interface {
	ListZones(ctx context.Context, vendorID uuid.UUID) ([]ZoneDTO, error)
	CreateZone(ctx context.Context, vendorID uuid.UUID, input CreateZoneInput) (*ZoneDTO, error)
	UpdateZone(ctx context.Context, vendorID, zoneID uuid.UUID, input UpdateZoneInput) (*ZoneDTO, error)
	DeleteZone(ctx context.Context, vendorID, zoneID uuid.UUID) error
	CreateRate(ctx context.Context, vendorID, zoneID uuid.UUID, input CreateRateInput) (*RateDTO, error)
	DeleteRate(ctx context.Context, vendorID, zoneID, rateID uuid.UUID) error
}

type service struct {
	repo catalogRepository
}

// NewService builds a shipping catalog service.
func NewService(repo catalogRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shipping catalog repository required")
	}
	return &service{repo: repo}, nil
}

// CreateZoneInput captures a new zone and optionally its initial rates.
type CreateZoneInput struct {
	Name          string
	Countries     []string
	IsRestOfWorld bool
	Rates         []CreateRateInput
}

// UpdateZoneInput captures the allowed zone fields for mutation.
type UpdateZoneInput struct {
	Name          *string
	Countries     *[]string
	IsRestOfWorld *bool
	Position      *int
}

// CreateRateInput captures a new rate for an existing zone.
type CreateRateInput struct {
	Name             string
	Price            string
	IsFree           bool
	MinSubtotalCents *int
	MaxSubtotalCents *int
}

func (s *service) ListZones(ctx context.Context, vendorID uuid.UUID) ([]ZoneDTO, error) {
	zones, err := s.repo.ListZonesWithRates(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shipping zones")
	}
	out := make([]ZoneDTO, 0, len(zones))
	for i := range zones {
		out = append(out, *FromZoneModel(&zones[i]))
	}
	return out, nil
}

func (s *service) CreateZone(ctx context.Context, vendorID uuid.UUID, input CreateZoneInput) (*ZoneDTO, error) {
	if err := validateZoneInput(input); err != nil {
		return nil, err
	}

	count, err := s.repo.CountZones(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count shipping zones")
	}

	zone := &models.ShippingZone{
		VendorID:      vendorID,
		Name:          strings.TrimSpace(input.Name),
		Countries:     normalizeCountries(input.Countries),
		IsRestOfWorld: input.IsRestOfWorld,
		Position:      int(count),
	}
	if err := s.repo.CreateZone(ctx, zone); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shipping zone")
	}

	for i, rateInput := range input.Rates {
		rate := rateFromInput(zone.ID, rateInput, i)
		if err := s.repo.CreateRate(ctx, rate); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shipping rate")
		}
		zone.Rates = append(zone.Rates, *rate)
	}

	return FromZoneModel(zone), nil
}

func (s *service) UpdateZone(ctx context.Context, vendorID, zoneID uuid.UUID, input UpdateZoneInput) (*ZoneDTO, error) {
	zone, err := s.repo.FindZone(ctx, vendorID, zoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shipping zone not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipping zone")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "zone name cannot be empty")
		}
		zone.Name = name
	}
	if input.Countries != nil {
		zone.Countries = normalizeCountries(*input.Countries)
	}
	if input.IsRestOfWorld != nil {
		zone.IsRestOfWorld = *input.IsRestOfWorld
	}
	if zone.IsRestOfWorld && len(zone.Countries) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rest-of-world zones cannot list countries")
	}
	if input.Position != nil {
		if *input.Position < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "position cannot be negative")
		}
		zone.Position = *input.Position
	}

	if err := s.repo.UpdateZone(ctx, zone); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shipping zone")
	}
	return FromZoneModel(zone), nil
}

func (s *service) DeleteZone(ctx context.Context, vendorID, zoneID uuid.UUID) error {
	if err := s.repo.DeleteZone(ctx, vendorID, zoneID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "shipping zone not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete shipping zone")
	}
	return nil
}

func (s *service) CreateRate(ctx context.Context, vendorID, zoneID uuid.UUID, input CreateRateInput) (*RateDTO, error) {
	if err := validateRateInput(input); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid shipping rate").WithDetails(err.Error())
	}

	zone, err := s.repo.FindZone(ctx, vendorID, zoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shipping zone not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipping zone")
	}

	count, err := s.repo.CountRates(ctx, zone.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count shipping rates")
	}

	rate := rateFromInput(zone.ID, input, int(count))
	if err := s.repo.CreateRate(ctx, rate); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shipping rate")
	}
	return FromRateModel(rate), nil
}

func (s *service) DeleteRate(ctx context.Context, vendorID, zoneID, rateID uuid.UUID) error {
	if _, err := s.repo.FindZone(ctx, vendorID, zoneID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "shipping zone not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipping zone")
	}
	if err := s.repo.DeleteRate(ctx, zoneID, rateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "shipping rate not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete shipping rate")
	}
	return nil
}

// validateZoneInput checks the zone and all of its initial rates,
// collecting every problem instead of stopping at the first.
func validateZoneInput(input CreateZoneInput) error {
	var problems error
	if strings.TrimSpace(input.Name) == "" {
		problems = multierr.Append(problems, errors.New("zone name is required"))
	}
	if input.IsRestOfWorld && len(input.Countries) > 0 {
		problems = multierr.Append(problems, errors.New("rest-of-world zones cannot list countries"))
	}
	for i, rate := range input.Rates {
		if err := validateRateInput(rate); err != nil {
			problems = multierr.Append(problems, fmt.Errorf("rate %d: %w", i, err))
		}
	}
	if problems != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid shipping zone").WithDetails(problems.Error())
	}
	return nil
}

func validateRateInput(input CreateRateInput) error {
	var problems error
	if strings.TrimSpace(input.Name) == "" {
		problems = multierr.Append(problems, errors.New("rate name is required"))
	}
	if !input.IsFree {
		if _, ok := money.ParseRateCents(input.Price); !ok {
			problems = multierr.Append(problems, fmt.Errorf("price %q is not a positive amount", input.Price))
		}
	}
	if input.MinSubtotalCents != nil && *input.MinSubtotalCents < 0 {
		problems = multierr.Append(problems, errors.New("min subtotal cannot be negative"))
	}
	if input.MaxSubtotalCents != nil && *input.MaxSubtotalCents < 0 {
		problems = multierr.Append(problems, errors.New("max subtotal cannot be negative"))
	}
	if input.MinSubtotalCents != nil && input.MaxSubtotalCents != nil &&
		*input.MinSubtotalCents > *input.MaxSubtotalCents {
		problems = multierr.Append(problems, errors.New("min subtotal exceeds max subtotal"))
	}
	return problems
}

func rateFromInput(zoneID uuid.UUID, input CreateRateInput, position int) *models.ShippingRate {
	return &models.ShippingRate{
		ZoneID:           zoneID,
		Name:             strings.TrimSpace(input.Name),
		Price:            strings.TrimSpace(input.Price),
		IsFree:           input.IsFree,
		MinSubtotalCents: input.MinSubtotalCents,
		MaxSubtotalCents: input.MaxSubtotalCents,
		Position:         position,
	}
}

func normalizeCountries(countries []string) pq.StringArray {
	seen := map[string]bool{}
	var out pq.StringArray
	for _, country := range countries {
		trimmed := strings.TrimSpace(country)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}
