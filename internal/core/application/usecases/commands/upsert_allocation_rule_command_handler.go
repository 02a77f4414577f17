package commands

import (
	"context"

	"grocery/internal/core/domain/model/assignment"
)

// UpsertAllocationRuleCommandHandler persists allocation rules. A rule takes
// effect on the next assignment snapshot refresh; in-flight routing keeps the
// snapshot it started with.
type UpsertAllocationRuleCommandHandler struct {
	uowFactory AllocationRuleUoWFactory
}

// NewUpsertAllocationRuleCommandHandler creates a handler for allocation rule upserts.
func NewUpsertAllocationRuleCommandHandler(
	uowFactory AllocationRuleUoWFactory,
) UpsertAllocationRuleCommandHandler {
	return UpsertAllocationRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the allocation rule upsert command.
func (h UpsertAllocationRuleCommandHandler) Handle(
	ctx context.Context,
	cmd UpsertAllocationRuleCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rule, err := assignment.NewAllocationRule(
		cmd.ZoneID(), cmd.SubcategoryID(), cmd.Strategy(), cmd.Fallback())
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

	if err = uow.AllocationRuleRepository().Upsert(ctx, rule); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
