package weather

import (
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// minETAMultiplier is the lowest legal ETA multiplier. Weather never makes
// delivery faster, so the multiplier is at least 1.0.
const minETAMultiplier = 1.0

// ErrRuleIsNotConstructed is returned when using an improperly initialized Rule.
var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule constructor")

// Rule is the weather adjustment active in a zone: an optional flat delivery
// fee override (taking precedence over every other fee computation), an ETA
// multiplier, and optionally full service suspension with a resumption
// estimate. At most one rule is active per zone at a time; the latest rule by
// timestamp supersedes its predecessors.
type Rule struct {
	id                  kernel.UUID
	zoneID              kernel.UUID
	condition           Condition
	deliveryFeeOverride *float64
	etaMultiplier       float64
	serviceSuspended    bool
	resumeEstimate      *time.Time
	appliedAt           time.Time

	isConstructed bool
}

// NewRule creates a weather rule for a zone.
//
// Parameters:
//   - id: Unique identifier for the rule
//   - zoneID: Zone the rule applies to
//   - condition: Weather condition (must be valid)
//   - deliveryFeeOverride: Flat fee replacing all fee computation, or nil for no override
//   - etaMultiplier: Factor applied to every sub-order ETA (must be >= 1.0)
//   - serviceSuspended: Whether ordering is suspended entirely
//   - resumeEstimate: Estimated resumption time when suspended, or nil if unknown
//   - appliedAt: Timestamp deciding supersession order
func NewRule(
	id kernel.UUID,
	zoneID kernel.UUID,
	condition Condition,
	deliveryFeeOverride *float64,
	etaMultiplier float64,
	serviceSuspended bool,
	resumeEstimate *time.Time,
	appliedAt time.Time,
) (*Rule, error) {
	rule := &Rule{
		serviceSuspended: serviceSuspended,
		appliedAt:        appliedAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		rule.setID(id),
		rule.setZoneID(zoneID),
		rule.setCondition(condition),
		rule.setDeliveryFeeOverride(deliveryFeeOverride),
		rule.setETAMultiplier(etaMultiplier),
		rule.setResumeEstimate(resumeEstimate),
	); err != nil {
		return nil, err
	}

	return rule, nil
}

// DefaultRule returns the rule in force when a zone has no recorded weather:
// normal conditions, no overrides, service running.
func DefaultRule(zoneID kernel.UUID) *Rule {
	return &Rule{
		id:            kernel.NewUUID(),
		zoneID:        zoneID,
		condition:     ConditionNormal,
		etaMultiplier: minETAMultiplier,
		isConstructed: true,
	}
}

// Validate ensures the Rule instance was properly constructed through NewRule.
func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}
	return nil
}

// ID returns the rule's unique identifier.
func (r *Rule) ID() kernel.UUID {
	return r.id
}

// ZoneID returns the zone the rule applies to.
func (r *Rule) ZoneID() kernel.UUID {
	return r.zoneID
}

// Condition returns the weather condition the rule records.
func (r *Rule) Condition() Condition {
	return r.condition
}

// DeliveryFeeOverride returns the flat delivery fee replacing all other fee
// computation, or nil when no override is active.
func (r *Rule) DeliveryFeeOverride() *float64 {
	if r.deliveryFeeOverride == nil {
		return nil
	}
	fee := *r.deliveryFeeOverride
	return &fee
}

// ETAMultiplier returns the factor applied to every sub-order ETA.
// Always at least 1.0.
func (r *Rule) ETAMultiplier() float64 {
	return r.etaMultiplier
}

// IsServiceSuspended reports whether ordering is suspended in the zone.
func (r *Rule) IsServiceSuspended() bool {
	return r.serviceSuspended
}

// ResumeEstimate returns the estimated resumption time for a suspended zone,
// or nil when unknown or not suspended.
func (r *Rule) ResumeEstimate() *time.Time {
	if r.resumeEstimate == nil {
		return nil
	}
	t := *r.resumeEstimate
	return &t
}

// AppliedAt returns the timestamp deciding supersession order.
func (r *Rule) AppliedAt() time.Time {
	return r.appliedAt
}

// Supersedes reports whether this rule replaces the other: later timestamp
// wins. Rules are never merged; the newest rule is the zone's whole truth.
func (r *Rule) Supersedes(other *Rule) bool {
	if other == nil {
		return true
	}
	return r.appliedAt.After(other.appliedAt)
}

// IsEquivalent reports whether two rules carry the same adjustments for the
// same zone, ignoring identity and timestamps. Re-applying an equivalent rule
// is a no-op: the ingestion job may deliver the same weather event twice.
func (r *Rule) IsEquivalent(other *Rule) bool {
	if other == nil {
		return false
	}
	if !r.zoneID.IsEqual(other.zoneID) ||
		r.condition != other.condition ||
		r.etaMultiplier != other.etaMultiplier ||
		r.serviceSuspended != other.serviceSuspended {
		return false
	}
	if (r.deliveryFeeOverride == nil) != (other.deliveryFeeOverride == nil) {
		return false
	}
	if r.deliveryFeeOverride != nil && *r.deliveryFeeOverride != *other.deliveryFeeOverride {
		return false
	}
	return true
}

func (r *Rule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rule) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	r.zoneID = zoneID
	return nil
}

func (r *Rule) setCondition(condition Condition) error {
	if err := condition.Validate(); err != nil {
		return err
	}
	r.condition = condition
	return nil
}

func (r *Rule) setDeliveryFeeOverride(override *float64) error {
	if override == nil {
		return nil
	}
	if *override < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryFeeOverride", fmt.Errorf("%f is negative", *override))
	}
	fee := *override
	r.deliveryFeeOverride = &fee
	return nil
}

func (r *Rule) setETAMultiplier(multiplier float64) error {
	if multiplier < minETAMultiplier {
		return errs.NewValueIsInvalidErrorWithCause(
			"etaMultiplier", fmt.Errorf("%f is less than %f", multiplier, minETAMultiplier))
	}
	r.etaMultiplier = multiplier
	return nil
}

func (r *Rule) setResumeEstimate(estimate *time.Time) error {
	if estimate == nil {
		return nil
	}
	t := *estimate
	r.resumeEstimate = &t
	return nil
}
