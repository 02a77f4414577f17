package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetZoneWeatherQueryHandler reads the append-only weather rule log for a
// zone. Rows come back newest first, so the first entry is the rule the
// router is currently applying.
type GetZoneWeatherQueryHandler struct {
	db *gorm.DB
}

// NewGetZoneWeatherQueryHandler creates a handler for zone weather queries.
func NewGetZoneWeatherQueryHandler(db *gorm.DB) GetZoneWeatherQueryHandler {
	return GetZoneWeatherQueryHandler{db: db}
}

// Handle retrieves up to the query's limit of weather rules for the zone,
// ordered newest first. An empty result means no weather event was ever
// recorded for the zone.
func (h GetZoneWeatherQueryHandler) Handle(
	ctx context.Context,
	query GetZoneWeatherQuery,
) ([]GetZoneWeatherQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rules := make([]GetZoneWeatherQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			condition,
			delivery_fee_override,
			eta_multiplier,
			service_suspended,
			resume_estimate,
			applied_at
		FROM weather_rules
		WHERE zone_id = ?
		ORDER BY applied_at DESC, id DESC
		LIMIT ?
	`, query.ZoneID().Bytes(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rule GetZoneWeatherQueryResponse
		err = rows.Scan(
			&rule.Condition,
			&rule.DeliveryFeeOverride,
			&rule.ETAMultiplier,
			&rule.ServiceSuspended,
			&rule.ResumeEstimate,
			&rule.AppliedAt,
		)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
