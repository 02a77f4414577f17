package commands

import (
	"context"
	"errors"
	"log/slog"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/weather"
	"grocery/internal/core/domain/services"
	"grocery/internal/pkg/errs"
)

// ApplyWeatherEventCommandHandler turns weather feed events into stored zone
// rules. Events are append-and-supersede: applying a rule never blocks
// in-flight quote computation, which reads the rule that was active when it
// started. Duplicate and stale deliveries are discarded, so the feed can
// redeliver safely.
type ApplyWeatherEventCommandHandler struct {
	uowFactory WeatherUoWFactory
	engine     services.WeatherRuleEngine
	logger     *slog.Logger
}

// NewApplyWeatherEventCommandHandler creates a handler for weather events.
func NewApplyWeatherEventCommandHandler(
	uowFactory WeatherUoWFactory,
	logger *slog.Logger,
) ApplyWeatherEventCommandHandler {
	return ApplyWeatherEventCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewWeatherRuleEngine(),
		logger:     logger.With("component", "apply_weather_event_command_handler"),
	}
}

// Handle processes the weather event command. Stale or duplicate events
// return nil without writing anything.
func (h ApplyWeatherEventCommandHandler) Handle(
	ctx context.Context,
	cmd ApplyWeatherEventCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	incoming, err := weather.NewRule(
		kernel.NewUUID(),
		cmd.ZoneID(),
		cmd.Condition(),
		cmd.DeliveryFeeOverride(),
		cmd.ETAMultiplier(),
		cmd.ServiceSuspended(),
		cmd.ResumeEstimate(),
		cmd.OccurredAt(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WeatherRuleRepository()

	current, err := repo.GetLatest(ctx, cmd.ZoneID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if !h.engine.ShouldApply(current, incoming) {
		h.logger.DebugContext(ctx, "Weather event discarded",
			"zone_id", cmd.ZoneID(), "condition", cmd.Condition().String())
		return nil
	}

	if err = repo.Append(ctx, incoming); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Weather rule applied",
		"zone_id", cmd.ZoneID(),
		"condition", cmd.Condition().String(),
		"service_suspended", cmd.ServiceSuspended())
	return nil
}
