package commands

import (
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/weather"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrApplyWeatherEventCommandIsNotConstructed = errors.New(
	"ApplyWeatherEventCommand must be created via NewApplyWeatherEventCommand constructor",
)

// ApplyWeatherEventCommand represents a weather event delivered by the
// provider feed: a condition for a zone with its fee, ETA, and suspension
// adjustments. Events are applied append-and-supersede; redelivering the same
// event is a no-op.
//
// Example:
//
//	fee := 30.0
//	cmd, err := NewApplyWeatherEventCommand(
//	    zoneID, weather.ConditionStorm, &fee, 1.5, false, nil, time.Now().UTC())
type ApplyWeatherEventCommand struct { //nolint:recvcheck //using for validation
	zoneID              kernel.UUID
	condition           weather.Condition
	deliveryFeeOverride *float64
	etaMultiplier       float64
	serviceSuspended    bool
	resumeEstimate      *time.Time
	occurredAt          time.Time

	guard guard.ConstructorGuard
}

// NewApplyWeatherEventCommand creates a command to apply a weather event to a
// zone. The occurredAt timestamp decides supersession: an event older than
// the zone's active rule is discarded.
func NewApplyWeatherEventCommand(
	zoneID kernel.UUID,
	condition weather.Condition,
	deliveryFeeOverride *float64,
	etaMultiplier float64,
	serviceSuspended bool,
	resumeEstimate *time.Time,
	occurredAt time.Time,
) (ApplyWeatherEventCommand, error) {
	weatherCommand := ApplyWeatherEventCommand{
		serviceSuspended: serviceSuspended,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		weatherCommand.setZoneID(zoneID),
		weatherCommand.setCondition(condition),
		weatherCommand.setDeliveryFeeOverride(deliveryFeeOverride),
		weatherCommand.setETAMultiplier(etaMultiplier),
		weatherCommand.setResumeEstimate(resumeEstimate),
		weatherCommand.setOccurredAt(occurredAt),
	); err != nil {
		return ApplyWeatherEventCommand{}, err
	}

	return weatherCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyWeatherEventCommand) Validate() error {
	return c.guard.Validate(ErrApplyWeatherEventCommandIsNotConstructed)
}

// ZoneID returns the zone the event applies to.
func (c ApplyWeatherEventCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Condition returns the reported weather condition.
func (c ApplyWeatherEventCommand) Condition() weather.Condition {
	return c.condition
}

// DeliveryFeeOverride returns the flat fee replacing all fee computation,
// or nil when the event carries no override.
func (c ApplyWeatherEventCommand) DeliveryFeeOverride() *float64 {
	if c.deliveryFeeOverride == nil {
		return nil
	}
	override := *c.deliveryFeeOverride
	return &override
}

// ETAMultiplier returns the factor applied to sub-order ETAs.
func (c ApplyWeatherEventCommand) ETAMultiplier() float64 {
	return c.etaMultiplier
}

// ServiceSuspended reports whether ordering is suspended entirely.
func (c ApplyWeatherEventCommand) ServiceSuspended() bool {
	return c.serviceSuspended
}

// ResumeEstimate returns the estimated service resumption time, or nil when
// unknown or not suspended.
func (c ApplyWeatherEventCommand) ResumeEstimate() *time.Time {
	if c.resumeEstimate == nil {
		return nil
	}
	estimate := *c.resumeEstimate
	return &estimate
}

// OccurredAt returns the event timestamp deciding supersession order.
func (c ApplyWeatherEventCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *ApplyWeatherEventCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	c.zoneID = zoneID
	return nil
}

func (c *ApplyWeatherEventCommand) setCondition(condition weather.Condition) error {
	if err := condition.Validate(); err != nil {
		return err
	}
	c.condition = condition
	return nil
}

func (c *ApplyWeatherEventCommand) setDeliveryFeeOverride(override *float64) error {
	if override == nil {
		return nil
	}
	if *override < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryFeeOverride", fmt.Errorf("%f is negative", *override))
	}
	value := *override
	c.deliveryFeeOverride = &value
	return nil
}

func (c *ApplyWeatherEventCommand) setETAMultiplier(multiplier float64) error {
	if multiplier < 1.0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"etaMultiplier", fmt.Errorf("%f is less than 1.0", multiplier))
	}
	c.etaMultiplier = multiplier
	return nil
}

func (c *ApplyWeatherEventCommand) setResumeEstimate(estimate *time.Time) error {
	if estimate == nil {
		return nil
	}
	value := *estimate
	c.resumeEstimate = &value
	return nil
}

func (c *ApplyWeatherEventCommand) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	c.occurredAt = occurredAt
	return nil
}
