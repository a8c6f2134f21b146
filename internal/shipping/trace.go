package shipping

import "github.com/google/uuid"

// Step identifies a stage of zone-aware resolution.
type Step string

const (
	StepZoneSelected Step = "zone_selected"
	StepRateSelected Step = "rate_selected"
	StepFallback     Step = "fallback"
)

// Reason explains why a step resolved the way it did.
type Reason string

const (
	// zone selection
	ReasonExplicitCountry Reason = "explicit_country"
	ReasonMatchAll        Reason = "match_all"
	ReasonRestOfWorld     Reason = "rest_of_world"

	// rate selection
	ReasonConditionMatch Reason = "condition_match"
	ReasonUnconditioned  Reason = "unconditioned"
	ReasonFreeRate       Reason = "free_rate"

	// fallbacks and degradations
	ReasonCatalogOrder Reason = "catalog_order_last_resort"
	ReasonUnconfigured Reason = "unconfigured"
	ReasonInvalidPrice Reason = "invalid_price"
	ReasonLookupError  Reason = "lookup_error"
	ReasonFlatPolicy   Reason = "flat_policy"
	ReasonNoVendor     Reason = "no_vendor"
)

// Event records one resolution decision for a partition.
type Event struct {
	Step         Step       `json:"step"`
	PartitionKey string     `json:"partition"`
	ZoneID       *uuid.UUID `json:"zone_id,omitempty"`
	RateID       *uuid.UUID `json:"rate_id,omitempty"`
	Reason       Reason     `json:"reason"`
}

// Trace collects the decisions taken during one quote so callers and tests
// can see why each partition priced the way it did.
type Trace struct {
	Events []Event `json:"events"`
}

func (t *Trace) add(event Event) {
	if t == nil {
		return
	}
	t.Events = append(t.Events, event)
}

// HasReason reports whether any event fired with the given reason.
func (t *Trace) HasReason(reason Reason) bool {
	if t == nil {
		return false
	}
	for _, e := range t.Events {
		if e.Reason == reason {
			return true
		}
	}
	return false
}

// ForPartition returns the events recorded for one partition key.
func (t *Trace) ForPartition(key string) []Event {
	if t == nil {
		return nil
	}
	var out []Event
	for _, e := range t.Events {
		if e.PartitionKey == key {
			out = append(out, e)
		}
	}
	return out
}
