package queries

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// maxWeatherHistoryLimit caps how many historical rules one query may return.
const maxWeatherHistoryLimit = 100

var (
	ErrGetZoneWeatherQueryIsNotConstructed = errors.New(
		"GetZoneWeatherQuery must be created via NewGetZoneWeatherQuery constructor",
	)
)

// GetZoneWeatherQuery retrieves the weather rule history for a zone, newest
// first. The first entry is the rule currently in effect; zones with no
// recorded rules get an empty history, which callers treat as normal
// conditions.
type GetZoneWeatherQuery struct {
	zoneID kernel.UUID
	limit  int

	isConstructed bool
}

// NewGetZoneWeatherQuery creates a weather history query for the zone.
// The limit bounds how many rules are returned and must be between 1
// and 100.
func NewGetZoneWeatherQuery(zoneID kernel.UUID, limit int) (GetZoneWeatherQuery, error) {
	if err := zoneID.Validate(); err != nil {
		return GetZoneWeatherQuery{}, err
	}
	if limit < 1 || limit > maxWeatherHistoryLimit {
		return GetZoneWeatherQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, 1, maxWeatherHistoryLimit)
	}

	return GetZoneWeatherQuery{
		zoneID:        zoneID,
		limit:         limit,
		isConstructed: true,
	}, nil
}

// ZoneID returns the zone whose weather history is requested.
func (q GetZoneWeatherQuery) ZoneID() kernel.UUID {
	return q.zoneID
}

// Limit returns the maximum number of rules to return.
func (q GetZoneWeatherQuery) Limit() int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
func (q GetZoneWeatherQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetZoneWeatherQueryIsNotConstructed
	}
	return nil
}

// GetZoneWeatherQueryResponse is one recorded weather rule.
type GetZoneWeatherQueryResponse struct {
	Condition           string
	DeliveryFeeOverride *float64
	ETAMultiplier       float64
	ServiceSuspended    bool
	ResumeEstimate      *time.Time
	AppliedAt           time.Time
}
